package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/cli/formatter"
	"github.com/vindursweden/kalender/internal/domain"
)

func newDoneCmd(app *App) *cobra.Command {
	var atFlag string

	cmd := &cobra.Command{
		Use:   "done <event-id>",
		Short: "Mark an event done and replan the rest of the day",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			at, err := resolveNow(atFlag, domain.DateOnly(now), now)
			if err != nil {
				return err
			}

			result, err := app.Completions.MarkDone(cmd.Context(), args[0], at)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %s\n", formatter.StyleGreen.Render("✓"), formatter.Bold(result.EventID))

			replan := result.Replan
			if replan.Overrun <= 0 {
				fmt.Fprintln(out, formatter.Dim("  Klart i tid, inget att flytta."))
				return nil
			}

			fmt.Fprintf(out, "  Försening: %s\n", formatter.FormatDuration(replan.Overrun))
			if replan.Absorbed > 0 {
				fmt.Fprintf(out, "  Absorberat: %s\n", formatter.FormatDuration(replan.Absorbed))
			}
			if replan.Status == domain.ReplanInsufficientFlex {
				fmt.Fprintf(out, "  %s\n", formatter.StyleRed.Render(
					fmt.Sprintf("Dagen räcker inte till: %s saknas", formatter.FormatDuration(replan.Missing))))
			}
			if len(replan.Patches) > 0 {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.ReplanTable(replan))
			}

			for _, w := range result.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "  WARNING: %s\n", w.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&atFlag, "at", "", "Completion time (HH:MM, default now)")

	return cmd
}
