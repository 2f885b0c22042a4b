package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/session"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("note-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().
		Str("driver", cfg.Storage.DB.Driver).
		Str("address", cfg.Server.HTTPAddress).
		Str("delete_policy", cfg.Notes.DeletePolicy).
		Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	ids := utils.NewUUIDGenerator()
	repositories := store.NewRepositories(db, ids, log)
	dataKeys := session.NewMemoryDataKeyStore(cfg.App.SessionTTL)
	services := service.NewServices(repositories, dataKeys, ids, *cfg, log)

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	backgroundWorkers := workers.NewWorkers(
		workers.NewSessionSweeper(dataKeys, cfg.Workers.SessionSweepInterval, log),
	)

	srv, err := server.NewServer(handlers, backgroundWorkers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
