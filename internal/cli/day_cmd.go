package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/cli/formatter"
	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

func newDayCmd(app *App) *cobra.Command {
	var dateFlag, nowFlag string
	var fill bool

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show the plan for a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag, app.now())
			if err != nil {
				return err
			}
			now, err := resolveNow(nowFlag, date, app.now())
			if err != nil {
				return err
			}

			plan, err := app.Plans.Day(cmd.Context(), contract.DayPlanRequest{
				Date: date,
				Now:  now,
				Fill: fill,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.Header("Plan "+domain.DateKey(plan.Date)))
			fmt.Fprintf(out, "  %s", formatter.DayTypeIndicator(plan.DayType))
			if plan.TomorrowType != plan.DayType {
				fmt.Fprintf(out, "  %s imorgon: %s", formatter.Dim("·"), formatter.DayTypeIndicator(plan.TomorrowType))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out)
			fmt.Fprint(out, formatter.DayPlanTable(plan, app.Household.People))

			for _, w := range plan.Warnings {
				fmt.Fprintf(cmd.ErrOrStderr(), "  WARNING: %s\n", w.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date to show (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Simulated clock time (HH:MM)")
	cmd.Flags().BoolVar(&fill, "fill", false, "Pad each person's day with filler for full grid coverage")

	return cmd
}
