package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newGridCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Browse the day grid interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("grid needs an interactive terminal; use `kalender day` instead")
			}

			program := tea.NewProgram(newGridModel(app), tea.WithAltScreen())
			_, err := program.Run()
			return err
		},
	}
	return cmd
}
