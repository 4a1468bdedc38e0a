package cli

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedGridModel(t *testing.T) gridModel {
	t.Helper()
	app := testApp(t)
	m := newGridModel(app)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(gridModel)

	msg := m.loadPlan()()
	loaded, ok := msg.(planLoadedMsg)
	require.True(t, ok, "plan should load: %v", msg)

	updated, _ = m.Update(loaded)
	return updated.(gridModel)
}

func TestGridModel_ShowsPlan(t *testing.T) {
	m := loadedGridModel(t)

	view := m.View()
	assert.Contains(t, view, "2026-09-07")
	assert.Contains(t, view, "SKOLDAG")
	assert.Contains(t, view, "Frukost")
	assert.Contains(t, view, "Pågår", "fill starts enabled")
}

func TestGridModel_NextDay(t *testing.T) {
	m := loadedGridModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(gridModel)
	require.NotNil(t, cmd, "day change reloads the plan")
	assert.Equal(t, "2026-09-08", m.date.Format("2006-01-02"))

	msg := cmd()
	loaded, ok := msg.(planLoadedMsg)
	require.True(t, ok)
	updated, _ = m.Update(loaded)
	m = updated.(gridModel)
	assert.Contains(t, m.View(), "2026-09-08")
}

func TestGridModel_Quit(t *testing.T) {
	m := loadedGridModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestGridModel_ToggleFill(t *testing.T) {
	m := loadedGridModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'f'}})
	m = updated.(gridModel)
	require.NotNil(t, cmd)
	assert.False(t, m.fill)

	msg := cmd()
	loaded, ok := msg.(planLoadedMsg)
	require.True(t, ok)

	updated, _ = m.Update(loaded)
	m = updated.(gridModel)
	assert.NotContains(t, m.View(), "Pågår")
}

func TestGridModel_ErrorShown(t *testing.T) {
	m := loadedGridModel(t)

	updated, _ := m.Update(planErrMsg{err: assert.AnError})
	m = updated.(gridModel)
	assert.Contains(t, m.View(), assert.AnError.Error())
}
