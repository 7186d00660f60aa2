package main

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-cui-validator/internal/config"
	"github.com/MKhiriev/go-cui-validator/internal/handler"
	"github.com/MKhiriev/go-cui-validator/internal/logger"
	"github.com/MKhiriev/go-cui-validator/internal/server"
	"github.com/MKhiriev/go-cui-validator/internal/service"
	"github.com/MKhiriev/go-cui-validator/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	startTime := time.Now()

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("cui-validator-server")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(cfg.App, buildInfo, startTime, log)
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

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("error running server")
	}
}
