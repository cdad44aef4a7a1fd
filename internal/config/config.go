// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for reco-chat.
// It aggregates all sub-configurations and is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds behaviour switches of the chat client.
	App App `envPrefix:"APP_"`

	// Adapter holds the recommendation backend address and per-endpoint
	// deadlines.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log sink settings.
	Log Log `envPrefix:"LOG_"`

	// Server holds the listen settings of the stub backend.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client behaviour switches.
type App struct {
	// DisableStreaming makes the client use the bulk endpoint instead of the
	// event stream.
	// Env: APP_DISABLE_STREAMING
	DisableStreaming bool `env:"DISABLE_STREAMING"`

	// SaveRemoteHistory posts every finished recommendation to the backend
	// history endpoint.
	// Env: APP_SAVE_REMOTE_HISTORY
	SaveRemoteHistory bool `env:"SAVE_REMOTE_HISTORY"`

	// HistoryLimit is how many conversation messages are restored on start.
	// Env: APP_HISTORY_LIMIT
	HistoryLimit int `env:"HISTORY_LIMIT"`
}

// Adapter holds the outbound HTTP settings.
type Adapter struct {
	// HTTPAddress is the base URL of the recommendation backend
	// (e.g. "http://localhost:8000"). A missing scheme defaults to http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// BulkTimeout is the deadline of the non-streaming recommendation call.
	// Env: ADAPTER_BULK_TIMEOUT
	BulkTimeout time.Duration `env:"BULK_TIMEOUT"`

	// ChatTimeout is the deadline of the free-form chat call.
	// Env: ADAPTER_CHAT_TIMEOUT
	ChatTimeout time.Duration `env:"CHAT_TIMEOUT"`

	// HealthTimeout is the deadline of a single liveness probe.
	// Env: ADAPTER_HEALTH_TIMEOUT
	HealthTimeout time.Duration `env:"HEALTH_TIMEOUT"`
}

// Storage groups the configuration for the local storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds the SQLite settings.
type DB struct {
	// DSN is the SQLite database file (e.g. "reco-chat.db").
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// HealthInterval is how often the backend liveness probe runs.
	// Env: WORKERS_HEALTH_INTERVAL
	HealthInterval time.Duration `env:"HEALTH_INTERVAL"`
}

// Log holds the log sink settings.
type Log struct {
	// File is the log file of the client. Relative paths are resolved next
	// to the executable.
	// Env: LOG_FILE
	File string `env:"FILE"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// Server holds the listen settings of the stub backend.
type Server struct {
	// HTTPAddress is the TCP address the stub listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// FrameDelay is the pause between two scripted stream frames.
	// Env: SERVER_FRAME_DELAY
	FrameDelay time.Duration `env:"FRAME_DELAY"`
}

// Defaults applied before any other source.
const (
	DefaultAdapterAddress = "http://localhost:8000"
	DefaultBulkTimeout    = 5 * time.Minute
	DefaultChatTimeout    = 35 * time.Second
	DefaultHealthTimeout  = 5 * time.Second
	DefaultHealthInterval = 30 * time.Second
	DefaultDSN            = "reco-chat.db"
	DefaultLogFile        = "reco-chat.log"
	DefaultLogLevel       = "info"
	DefaultHistoryLimit   = 50
	DefaultServerAddress  = "localhost:8000"
	DefaultFrameDelay     = 300 * time.Millisecond
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{HistoryLimit: DefaultHistoryLimit},
		Adapter: Adapter{
			HTTPAddress:   DefaultAdapterAddress,
			BulkTimeout:   DefaultBulkTimeout,
			ChatTimeout:   DefaultChatTimeout,
			HealthTimeout: DefaultHealthTimeout,
		},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Workers: Workers{HealthInterval: DefaultHealthInterval},
		Log:     Log{File: DefaultLogFile, Level: DefaultLogLevel},
		Server:  Server{HTTPAddress: DefaultServerAddress, FrameDelay: DefaultFrameDelay},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources in the following priority order (later non-zero fields
// win):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags parsed from args
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
