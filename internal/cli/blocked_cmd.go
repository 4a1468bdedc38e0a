package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/cli/formatter"
)

func newBlockedCmd(app *App) *cobra.Command {
	var dateFlag, nowFlag string

	cmd := &cobra.Command{
		Use:   "blocked <event-id>",
		Short: "Explain why an event cannot start yet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag, app.now())
			if err != nil {
				return err
			}
			now, err := resolveNow(nowFlag, date, app.now())
			if err != nil {
				return err
			}

			reason, err := app.Plans.WhyBlocked(cmd.Context(), date, args[0], now)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if reason == nil {
				fmt.Fprintln(out, formatter.StyleGreen.Render("Inget blockerar, kör!"))
				return nil
			}

			fmt.Fprintf(out, "%s %s\n", formatter.StyleYellow.Render("⏳"), reason.Message)
			if reason.BlockedBy != "" {
				fmt.Fprintf(out, "  %s\n", formatter.Dim("väntar på "+reason.BlockedBy))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "Date of the event (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&nowFlag, "now", "", "Simulated clock time (HH:MM)")

	return cmd
}
