package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/cli/formatter"
	"github.com/vindursweden/kalender/internal/contract"
)

func newApplyCmd(app *App) *cobra.Command {
	var (
		kind     string
		eventID  string
		personID string
		title    string
		date     string
		start    string
		duration int
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply a structured calendar operation",
		Long: `Apply one create, modify or delete operation to the calendar.
Modifying a planned event lands as a date-scoped override; only
manually created events can be deleted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			op := contract.CalendarOp{
				Kind:     contract.CalendarOpKind(kind),
				EventID:  eventID,
				PersonID: personID,
				Title:    title,
				Date:     date,
				Start:    start,
			}
			if cmd.Flags().Changed("duration") {
				op.DurationMin = &duration
			}

			result, err := app.Ops.Apply(cmd.Context(), op, app.now())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch result.Kind {
			case contract.OpCreate:
				fmt.Fprintf(out, "Skapade %s\n", formatter.Bold(result.EventID))
			case contract.OpModify:
				if result.Overridden {
					fmt.Fprintf(out, "Justerade %s %s\n", formatter.Bold(result.EventID), formatter.Dim("(gäller bara denna dag)"))
				} else {
					fmt.Fprintf(out, "Uppdaterade %s\n", formatter.Bold(result.EventID))
				}
			case contract.OpDelete:
				fmt.Fprintf(out, "Tog bort %s\n", formatter.Bold(result.EventID))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&kind, "kind", "", "Operation kind (create|modify|delete)")
	cmd.Flags().StringVar(&eventID, "event", "", "Target event id (modify/delete)")
	cmd.Flags().StringVar(&personID, "person", "", "Person id (create)")
	cmd.Flags().StringVar(&title, "title", "", "Event title")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().IntVar(&duration, "duration", 0, "Duration in minutes")
	_ = cmd.MarkFlagRequired("kind")

	return cmd
}
