package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

func main() {
	log := logger.NewLogger("note-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	client, err := adapter.NewHTTPNoteClient(cfg.ServerAddress, cfg.RequestTimeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create note client")
	}
	client.SetToken(cfg.Token)
	if cfg.SourceID != "" {
		client.SetSourceID(cfg.SourceID)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = run(ctx, client, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
