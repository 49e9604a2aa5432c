package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-file-share/internal/config"
	"github.com/MKhiriev/go-file-share/internal/handler"
	"github.com/MKhiriev/go-file-share/internal/logger"
	"github.com/MKhiriev/go-file-share/internal/server"
	"github.com/MKhiriev/go-file-share/internal/service"
	"github.com/MKhiriev/go-file-share/internal/store"
	"github.com/MKhiriev/go-file-share/internal/utils"
	"github.com/MKhiriev/go-file-share/internal/workers"
	"github.com/MKhiriev/go-file-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println("go-file-share server,", buildInfo)

	log := logger.NewLogger("go-file-share-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	storages := store.NewStorages(db, log)

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, db, cfg.Server, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	reaper := workers.NewReaper(storages.ShareLinkRepository, cfg.Workers, utils.SystemClock{}, log)

	srv, err := server.NewServer(handlers, []workers.Worker{reaper}, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
