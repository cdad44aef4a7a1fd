package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/reco-chat/internal/adapter"
	"github.com/MKhiriev/reco-chat/internal/client"
	"github.com/MKhiriev/reco-chat/internal/config"
	"github.com/MKhiriev/reco-chat/internal/logger"
	"github.com/MKhiriev/reco-chat/internal/service"
	"github.com/MKhiriev/reco-chat/internal/store"
	"github.com/MKhiriev/reco-chat/internal/tui"
	"github.com/MKhiriev/reco-chat/internal/workers"
	"github.com/MKhiriev/reco-chat/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewClientLogger("reco-chat", cfg.Log.File, cfg.Log.Level)
	log.Debug().Any("config", cfg).Msg("received configs")

	if err = run(cfg, log); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintf(os.Stderr, "reco-chat: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg *config.ClientConfig, log *logger.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	recoAdapter, err := adapter.NewHTTPRecommendationAdapter(cfg.Adapter, log)
	if err != nil {
		return fmt.Errorf("create recommendation adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return fmt.Errorf("create local storage: %w", err)
	}

	services := service.NewClientServices(storages, recoAdapter, cfg, log)

	ui, err := tui.New(services, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		_ = storages.Close()
		return fmt.Errorf("create ui: %w", err)
	}

	app, err := client.NewApp(ui, workers.NewWorkers(services, cfg.Workers), log, storages.Close)
	if err != nil {
		_ = storages.Close()
		return fmt.Errorf("init client app: %w", err)
	}

	return app.Run(ctx)
}
