package cli

import (
	"fmt"
	"os"

	ical "github.com/arran4/golang-ical"
	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/contract"
	"github.com/vindursweden/kalender/internal/domain"
)

func newExportCmd(app *App) *cobra.Command {
	var dateFlag, outPath string
	var days int

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plan as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			now := app.now()
			from, err := resolveDate(dateFlag, now)
			if err != nil {
				return err
			}
			if days < 1 {
				days = 1
			}

			cal := ical.NewCalendar()
			cal.SetMethod(ical.MethodPublish)
			cal.SetProductId("-//vindursweden//kalender//SV")

			for i := 0; i < days; i++ {
				date := from.AddDate(0, 0, i)
				plan, err := app.Plans.Day(cmd.Context(), contract.DayPlanRequest{Date: date, Now: now})
				if err != nil {
					return err
				}
				for _, e := range plan.Events {
					if e.Synthetic() {
						continue
					}
					ev := cal.AddEvent(e.ID)
					ev.SetDtStampTime(now)
					ev.SetStartAt(e.Start)
					ev.SetEndAt(e.End)
					ev.SetSummary(e.Title)
					if person, ok := app.Household.Person(e.PersonID); ok {
						ev.SetDescription(person.Name)
					}
				}
			}

			serialized := cal.Serialize()
			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), serialized)
				return nil
			}
			if err := os.WriteFile(outPath, []byte(serialized), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", outPath, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Skrev %s (%s och %d dagar framåt)\n", outPath, domain.DateKey(from), days-1)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "First date to export (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 1, "Number of days to export")
	cmd.Flags().StringVar(&outPath, "out", "", "Output file (default stdout)")

	return cmd
}
