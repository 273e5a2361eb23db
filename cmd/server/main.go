// Package main implements the entry point for the contact API server,
// a REST API managing users, their contacts, and contact addresses.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // Register pgx driver for database/sql

	"github.com/mrglxor/contact-api/internal/config"
	"github.com/mrglxor/contact-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, status) and exit")
	flag.Parse()

	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.cleanup()

	// Migration-only invocation
	if *migrateCmd != "" {
		if err := runMigrations(app.db, *migrateCmd); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
		return
	}

	if app.config.Database.AutoMigrate {
		if err := runMigrations(app.db, "up"); err != nil {
			log.Fatalf("Startup migration failed: %v", err)
		}
	}

	if err := app.startHTTPServer(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up application components.
// Returns the wired application and any initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger := logger.Setup(cfg.Server)

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	db, err := setupDatabase(cfg, appLogger)
	if err != nil {
		return nil, err
	}

	return newApplication(cfg, appLogger, db), nil
}
