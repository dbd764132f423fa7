package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/voy/internal/config"
	"github.com/MKhiriev/voy/internal/handler"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/server"
	"github.com/MKhiriev/voy/internal/service"
	"github.com/MKhiriev/voy/internal/store"
	"github.com/MKhiriev/voy/internal/workers"
	"github.com/MKhiriev/voy/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := printBuildInfo()

	log := logger.NewLogger("voy-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// a version stamped at build time wins over the built-in default
	if buildInfo.Known() && (cfg.App.Version == "" || cfg.App.Version == "dev") {
		cfg.App.Version = buildInfo.Version
	}

	log.Debug().Str("http_address", cfg.Server.HTTPAddress).Str("version", cfg.App.Version).Msg("received configs")

	ctx, stop := server.NotifyShutdown(context.Background())
	defer stop()

	storages, err := store.NewStorages(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	var wg sync.WaitGroup
	wg.Go(func() {
		workers.NewWorkers(storages, cfg.Workers, log).Run(ctx)
	})

	if err = srv.RunServer(ctx); err != nil {
		log.Err(err).Msg("server stopped with error")
	}

	stop()
	wg.Wait()
	log.Info().Msg("server stopped")
}

func printBuildInfo() models.AppBuildInfo {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)

	return info
}
