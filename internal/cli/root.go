package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vindursweden/kalender/internal/config"
	"github.com/vindursweden/kalender/internal/domain"
	"github.com/vindursweden/kalender/internal/service"
)

// App holds the configuration and service interfaces used by CLI commands.
type App struct {
	Household   config.Household
	ConfigPath  string
	Plans       service.PlanService
	Completions service.CompletionService
	Ops         service.OpsService

	// Now supplies the clock; tests inject a fixed one.
	Now func() time.Time

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

// NewRootCmd creates the top-level "kalender" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "kalender",
		Short: "Household day planner with adaptive replanning",
	}

	root.AddCommand(
		newDayCmd(app),
		newDoneCmd(app),
		newBlockedCmd(app),
		newApplyCmd(app),
		newValidateCmd(app),
		newExportCmd(app),
		newImportCmd(app),
		newSetupCmd(app),
		newGridCmd(app),
	)

	return root
}

// resolveDate parses a --date flag, defaulting to the current date.
func resolveDate(flag string, now time.Time) (time.Time, error) {
	if flag == "" {
		return domain.DateOnly(now), nil
	}
	date, err := domain.ParseDateKey(flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", flag)
	}
	return date, nil
}

// resolveNow parses a --now flag as a clock time on the given date,
// defaulting to the real clock.
func resolveNow(flag string, date, now time.Time) (time.Time, error) {
	if flag == "" {
		return now, nil
	}
	since, err := domain.ParseClock(flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected HH:MM", flag)
	}
	return domain.At(date, since), nil
}
