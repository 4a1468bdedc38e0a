package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/vindursweden/kalender/internal/cli"
	"github.com/vindursweden/kalender/internal/config"
	"github.com/vindursweden/kalender/internal/db"
	"github.com/vindursweden/kalender/internal/repository"
	"github.com/vindursweden/kalender/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.kalender/kalender.db
	dbPath := os.Getenv("KALENDER_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".kalender", "kalender.db")
	}

	configPath := os.Getenv("KALENDER_CONFIG")
	if configPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configPath = filepath.Join(home, ".kalender", "kalender.yaml")
	}

	app := &cli.App{
		ConfigPath: configPath,
		Now:        time.Now,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Setup and validate must work before a configuration exists; every
	// other command needs the household loaded and the database open.
	if _, err := os.Stat(configPath); err == nil {
		now := time.Now()
		household, err := config.Load(configPath, now.AddDate(0, 0, -30), now.AddDate(1, 0, 0))
		if err != nil {
			return fmt.Errorf("loading %s: %w", configPath, err)
		}
		app.Household = *household

		database, err := db.OpenDB(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer database.Close()

		manualRepo := repository.NewSQLiteManualEventRepo(database)
		overrideRepo := repository.NewSQLiteOverrideRepo(database)
		completionRepo := repository.NewSQLiteCompletionRepo(database)
		uow := db.NewSQLiteUnitOfWork(database)

		plans := service.NewPlanService(*household, manualRepo, overrideRepo, completionRepo)
		app.Plans = plans
		app.Completions = service.NewCompletionService(plans, uow)
		app.Ops = service.NewOpsService(plans, manualRepo, overrideRepo)
	}

	return cli.NewRootCmd(app).Execute()
}
