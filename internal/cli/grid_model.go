package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/vindursweden/kalender/internal/cli/formatter"
	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

type gridKeyMap struct {
	Prev    key.Binding
	Next    key.Binding
	Today   key.Binding
	Fill    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func newGridKeyMap() gridKeyMap {
	return gridKeyMap{
		Prev:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "föregående dag")),
		Next:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "nästa dag")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "idag")),
		Fill:    key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "utfyllnad av/på")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "uppdatera")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "avsluta")),
	}
}

type planLoadedMsg struct {
	plan *contract.DayPlan
}

type planErrMsg struct {
	err error
}

// gridModel is the bubbletea Model for the interactive day grid.
type gridModel struct {
	app  *App
	keys gridKeyMap

	date time.Time
	fill bool
	plan *contract.DayPlan
	err  error

	vp    viewport.Model
	ready bool
}

func newGridModel(app *App) gridModel {
	return gridModel{
		app:  app,
		keys: newGridKeyMap(),
		date: domain.DateOnly(app.now()),
		fill: true,
		vp:   viewport.New(0, 0),
	}
}

func (m gridModel) Init() tea.Cmd {
	return m.loadPlan()
}

func (m gridModel) loadPlan() tea.Cmd {
	app, date, fill := m.app, m.date, m.fill
	return func() tea.Msg {
		plan, err := app.Plans.Day(context.Background(), contract.DayPlanRequest{
			Date: date,
			Now:  app.now(),
			Fill: fill,
		})
		if err != nil {
			return planErrMsg{err: err}
		}
		return planLoadedMsg{plan: plan}
	}
}

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 3
		footerHeight := 2
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - headerHeight - footerHeight
		m.ready = true
		m.refreshContent()
		return m, nil

	case planLoadedMsg:
		m.plan = msg.plan
		m.err = nil
		m.refreshContent()
		return m, nil

	case planErrMsg:
		m.err = msg.err
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.date = m.date.AddDate(0, 0, -1)
			return m, m.loadPlan()
		case key.Matches(msg, m.keys.Next):
			m.date = m.date.AddDate(0, 0, 1)
			return m, m.loadPlan()
		case key.Matches(msg, m.keys.Today):
			m.date = domain.DateOnly(m.app.now())
			return m, m.loadPlan()
		case key.Matches(msg, m.keys.Fill):
			m.fill = !m.fill
			return m, m.loadPlan()
		case key.Matches(msg, m.keys.Refresh):
			return m, m.loadPlan()
		}
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *gridModel) refreshContent() {
	if !m.ready {
		return
	}
	switch {
	case m.err != nil:
		m.vp.SetContent(formatter.StyleRed.Render(m.err.Error()))
	case m.plan != nil:
		m.vp.SetContent(formatter.DayPlanTable(m.plan, m.app.Household.People))
	}
}

func (m gridModel) View() string {
	if !m.ready {
		return "laddar..."
	}

	var header string
	if m.plan != nil {
		header = fmt.Sprintf("%s  %s",
			formatter.Bold(domain.DateKey(m.date)),
			formatter.DayTypeIndicator(m.plan.DayType))
	} else {
		header = formatter.Bold(domain.DateKey(m.date))
	}

	help := formatter.Dim(strings.Join([]string{
		"← → byt dag", "t idag", "f utfyllnad", "r uppdatera", "q avsluta",
	}, "  ·  "))

	return header + "\n\n" + m.vp.View() + "\n" + help
}
