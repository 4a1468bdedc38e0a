package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/cli/formatter"
	"github.com/vindursweden/kalender/internal/domain"
	"github.com/vindursweden/kalender/internal/importer"
)

func newImportCmd(app *App) *cobra.Command {
	var personID string

	cmd := &cobra.Command{
		Use:   "import <file.ics>",
		Short: "Import appointments from an iCalendar file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := app.Household.Person(personID); !ok {
				return fmt.Errorf("unknown person %q", personID)
			}

			imported, skipped, err := importer.ParseFile(args[0], personID)
			if err != nil {
				return err
			}

			events := make([]domain.Event, 0, len(imported))
			for _, ie := range imported {
				events = append(events, ie.Event)
			}
			if err := app.Ops.ImportEvents(cmd.Context(), events); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d händelser importerade till %s\n",
				formatter.StyleGreen.Render("✓"), len(events), personID)
			for _, reason := range skipped {
				fmt.Fprintf(cmd.ErrOrStderr(), "  hoppade över: %s\n", reason)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&personID, "person", "", "Person to import the events for")
	_ = cmd.MarkFlagRequired("person")

	return cmd
}
