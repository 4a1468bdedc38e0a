package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/cli/formatter"
)

func newSetupCmd(app *App) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create a starter configuration interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("setup needs an interactive terminal")
			}

			path := outPath
			if path == "" {
				path = app.ConfigPath
			}
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s exists already; remove it first or use --out", path)
			}

			var namesInput, schooldays string
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Vilka bor här? (namn, kommaseparerade)").
						Placeholder("Leia, Max, Pappa").
						Value(&namesInput).
						Validate(func(s string) error {
							if strings.TrimSpace(s) == "" {
								return fmt.Errorf("minst en person behövs")
							}
							return nil
						}),
					huh.NewSelect[string]().
						Title("Skoldagar").
						Options(
							huh.NewOption("Måndag till fredag", "mon-fri"),
							huh.NewOption("Inga (bara lediga dagar)", "none"),
						).
						Value(&schooldays),
				),
			).WithTheme(kalenderHuhTheme()).WithShowHelp(false)

			if err := form.Run(); err != nil {
				return err
			}

			data := starterConfig(splitNames(namesInput), schooldays == "mon-fri")
			if err := os.WriteFile(path, []byte(data), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("✓"), path)
			fmt.Fprintln(out, formatter.Dim("  Fyll på med fler steg och kör sedan `kalender validate`."))
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "Where to write the configuration (default the active path)")

	return cmd
}

func splitNames(input string) []string {
	var names []string
	for _, part := range strings.Split(input, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// starterConfig renders a minimal working configuration: every person
// gets a wake-up and a bedtime step so `kalender day` shows something
// immediately.
func starterConfig(names []string, schoolWeek bool) string {
	var b strings.Builder

	b.WriteString("people:\n")
	for _, name := range names {
		b.WriteString(fmt.Sprintf("  - id: %s\n    name: %s\n", strings.ToLower(name), name))
	}

	b.WriteString("rules:\n  weekdays:\n")
	if schoolWeek {
		for _, day := range []string{"monday", "tuesday", "wednesday", "thursday", "friday"} {
			b.WriteString(fmt.Sprintf("    %s: school\n", day))
		}
	}

	b.WriteString("days:\n")
	profiles := []string{`"off"`}
	if schoolWeek {
		profiles = []string{"school", `"off"`}
	}
	for _, profile := range profiles {
		b.WriteString(fmt.Sprintf("  %s:\n", profile))
		wake := "07:00"
		if profile != "school" {
			wake = "08:00"
		}
		for _, name := range names {
			id := strings.ToLower(name)
			b.WriteString(fmt.Sprintf("    - key: vakna\n      person: %s\n      title: Vakna\n      at: %q\n      min_min: 5\n", id, wake))
			b.WriteString(fmt.Sprintf("    - key: laggdags\n      person: %s\n      title: Läggdags\n      at: \"20:30\"\n", id))
		}
	}

	return b.String()
}

func kalenderHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}
