package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-places/internal/adapter"
	"github.com/MKhiriev/go-places/internal/config"
	"github.com/MKhiriev/go-places/internal/handler"
	"github.com/MKhiriev/go-places/internal/logger"
	"github.com/MKhiriev/go-places/internal/server"
	"github.com/MKhiriev/go-places/internal/service"
	"github.com/MKhiriev/go-places/internal/store"
	"github.com/MKhiriev/go-places/internal/workers"
	"github.com/MKhiriev/go-places/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := newBuildInfo()
	printBuildInfo(buildInfo)

	log := logger.NewLogger("go-places-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildInfo.BuildVersion()
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages, err := store.NewStorages(db, cfg.Storage.Files, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	geocoder, err := adapter.NewGeocoder(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating geocoder")
	}

	cleaner := workers.NewImageCleaner(storages.ImageStorage, cfg.Workers.ImageCleanupQueueSize, log)
	backgroundWorkers := workers.NewWorkers(cleaner)
	backgroundWorkers.Run(ctx)

	services, err := service.NewServices(storages, geocoder, cleaner, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, storages.ImageStorage, cleaner, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	// blocks until SIGTERM, SIGINT or SIGQUIT
	srv.RunServer()

	cancel()
	backgroundWorkers.Wait()
}

func newBuildInfo() models.AppBuildInfo {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	return models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
