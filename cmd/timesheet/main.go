package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"timesheet/internal/cli"
	"timesheet/internal/config"
	"timesheet/internal/db"
	"timesheet/internal/importer"
	"timesheet/internal/repository"
	"timesheet/internal/service"
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
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	entryRepo := repository.NewSQLiteEntryRepo(database)
	activeRepo := repository.NewSQLiteActiveSessionRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	var logFile *os.File
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	if cfg.LogPath != "" {
		logFile, err = os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer logFile.Close()
		logger = slog.New(slog.NewTextHandler(logFile, nil))
	}

	// One-shot legacy flat-file migration. Runs before any command so
	// every surface sees the migrated store.
	result, err := importer.Run(context.Background(), cfg.LegacyFile, entryRepo, activeRepo)
	if err != nil {
		return fmt.Errorf("importing legacy data from %s: %w", cfg.LegacyFile, err)
	}
	if result != nil {
		logger.Info("legacy data imported",
			slog.Int("entries", result.Entries),
			slog.Bool("session_restored", result.SessionRestored),
			slog.String("backup", result.BackupPath),
		)
	}

	opts := []service.Option{}
	if logFile != nil {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(logFile)))
	}

	app := &cli.App{
		Timesheet: service.NewTimesheetService(entryRepo, activeRepo, uow, opts...),
		HTTPAddr:  cfg.HTTPAddr,
		Logger:    logger,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
