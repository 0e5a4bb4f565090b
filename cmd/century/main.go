package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/century/internal/cli"
	"github.com/alexanderramin/century/internal/config"
	"github.com/alexanderramin/century/internal/db"
	"github.com/alexanderramin/century/internal/repository"
	"github.com/alexanderramin/century/internal/service"
	tmpl "github.com/alexanderramin/century/internal/template"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	catalog, err := tmpl.LoadCatalog(cfg.TemplateDir)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	scheduleRepo := repository.NewSQLiteScheduleRepo(database)
	entryRepo := repository.NewSQLiteEntryRepo(database)
	seriesRepo := repository.NewSQLiteSeriesRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(os.Stderr))
	}

	app := &cli.App{
		Schedules: service.NewScheduleService(scheduleRepo, entryRepo, uow, observers...),
		Timeline:  service.NewTimelineService(uow, catalog, observers...),
		Series:    service.NewSeriesService(scheduleRepo, seriesRepo, uow, observers...),
		Templates: service.NewTemplateService(catalog),
		Defaults:  cfg.GlobalParams(),
		ExportDir: cfg.ExportDir,
	}

	// Forms need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
