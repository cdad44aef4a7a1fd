package main

import (
	"fmt"
	"os"

	"github.com/MKhiriev/reco-chat/internal/config"
	"github.com/MKhiriev/reco-chat/internal/handler"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/server"
	"github.com/MKhiriev/reco-chat/internal/stub"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("reco-stub-server")
	cfg, err := config.GetStubConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	handlers, err := handler.NewHandlers(stub.NewBackend(), *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, *cfg, log)
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
