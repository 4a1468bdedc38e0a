package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vindursweden/kalender/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// DayTypeIndicator returns a colored day type label such as "● SKOLDAG".
func DayTypeIndicator(dayType domain.DayType) string {
	switch dayType {
	case domain.DaySchool:
		return StyleBlue.Render("● SKOLDAG")
	case domain.DayOff:
		return StyleGreen.Render("● LEDIG")
	case domain.DaySpecial:
		return StyleYellow.Render("● SPECIAL")
	default:
		return StyleDim.Render("● OKÄND")
	}
}

// PersonStyle returns a style for the person's configured color, falling
// back to the default foreground.
func PersonStyle(person domain.Person) lipgloss.Style {
	if person.Color == "" {
		return StyleFg
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(person.Color))
}

// PersonLabel renders the person's name (and emoji, when set) in their color.
func PersonLabel(person domain.Person) string {
	label := person.Name
	if person.Emoji != "" {
		label = person.Emoji + " " + label
	}
	return PersonStyle(person).Render(label)
}

// EventCell renders one event for the day grid: completed events get a
// check mark, synthetic filler is dimmed.
func EventCell(event domain.Event) string {
	switch {
	case event.Completed():
		return StyleGreen.Render("✓ " + event.Title)
	case event.Synthetic():
		return StyleDim.Render(event.Title)
	default:
		return StyleFg.Render(event.Title)
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
