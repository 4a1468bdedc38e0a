package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/cli/formatter"
	"github.com/vindursweden/kalender/internal/config"
)

func newValidateCmd(app *App) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the household configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := configPath
			if path == "" {
				path = app.ConfigPath
			}

			now := app.now()
			household, err := config.Load(path, now.AddDate(0, 0, -30), now.AddDate(1, 0, 0))
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("✓"), path)
			fmt.Fprintf(out, "  %d personer, %d dagsprofiler\n", len(household.People), len(household.Profiles))
			if n := len(household.Rules.SpecialDates); n > 0 {
				fmt.Fprintf(out, "  %d specialdagar inom horisonten\n", n)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "Configuration file to validate (default the active one)")

	return cmd
}
