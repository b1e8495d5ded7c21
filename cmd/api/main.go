package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"mail-task-planner/config"
	_ "mail-task-planner/docs" // Swagger docs
	"mail-task-planner/internal/db"
	"mail-task-planner/internal/httpserver"
	"mail-task-planner/pkg/dateparse"
	"mail-task-planner/pkg/gcalendar"
	"mail-task-planner/pkg/log"
)

// @title       Mail Task Planner API
// @description Extracts task candidates from email text, persists confirmed tasks, and bin-packs them into a daily schedule with optional Google Calendar export.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Mail Task Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date normalizer (drives all deadline parsing and current-year defaulting)
	normalizer, err := dateparse.New(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		normalizer, _ = dateparse.New("UTC")
	}

	// 4. PostgreSQL (optional; in-memory store when DSN is empty)
	var postgresDB *sql.DB
	if cfg.Postgres.DSN != "" {
		postgresDB, err = db.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			logger.Fatalf(ctx, "Failed to connect to postgres: %v", err)
			return
		}
		defer postgresDB.Close()
		logger.Info(ctx, "PostgreSQL connected")
	} else {
		logger.Warn(ctx, "POSTGRES_DSN not set, tasks are stored in memory only")
	}

	// 5. Google Calendar client (optional)
	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			logger.Warn(ctx, "→ Run `go run scripts/gcal-auth/main.go` to generate token.json")
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. HTTP server
	srv, err := httpserver.New(httpserver.Config{
		Logger:     logger,
		Cfg:        cfg,
		PostgresDB: postgresDB,
		Calendar:   calendarClient,
		Normalizer: normalizer,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
		return
	}

	if err := srv.Run(ctx); err != nil {
		logger.Fatalf(ctx, "HTTP server error: %v", err)
	}
	logger.Info(ctx, "Shutdown complete")
}
