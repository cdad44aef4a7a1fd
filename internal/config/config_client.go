package config

import (
	"fmt"
	"time"
)

// ClientApp holds client behaviour switches.
type ClientApp struct {
	Streaming         bool
	SaveRemoteHistory bool
	HistoryLimit      int
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the recommendation backend.
	HTTPAddress string
	// BulkTimeout bounds the non-streaming recommendation call.
	BulkTimeout time.Duration
	// ChatTimeout bounds the free-form chat call.
	ChatTimeout time.Duration
	// HealthTimeout bounds a single liveness probe.
	HealthTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file used by the client.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	HealthInterval time.Duration
}

// ClientLog contains the client log sink.
type ClientLog struct {
	File  string
	Level string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	Log     ClientLog
}

// StubConfig is the configuration of the stub backend.
type StubConfig struct {
	HTTPAddress string
	FrameDelay  time.Duration
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// GetStubConfig builds and validates the stub backend config view.
func GetStubConfig(args []string) (*StubConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	stubCfg := &StubConfig{
		HTTPAddress: cfg.Server.HTTPAddress,
		FrameDelay:  cfg.Server.FrameDelay,
	}
	return stubCfg, stubCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Streaming:         !cfg.App.DisableStreaming,
			SaveRemoteHistory: cfg.App.SaveRemoteHistory,
			HistoryLimit:      cfg.App.HistoryLimit,
		},
		Adapter: ClientAdapter{
			HTTPAddress:   cfg.Adapter.HTTPAddress,
			BulkTimeout:   cfg.Adapter.BulkTimeout,
			ChatTimeout:   cfg.Adapter.ChatTimeout,
			HealthTimeout: cfg.Adapter.HealthTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
		Workers: ClientWorkers{HealthInterval: cfg.Workers.HealthInterval},
		Log:     ClientLog{File: cfg.Log.File, Level: cfg.Log.Level},
	}
}
