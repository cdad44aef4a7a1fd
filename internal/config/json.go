package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] with JSON tags and
// string-friendly durations.
type StructuredJSONConfig struct {
	App struct {
		DisableStreaming  bool `json:"disable_streaming"`
		SaveRemoteHistory bool `json:"save_remote_history"`
		HistoryLimit      int  `json:"history_limit"`
	} `json:"app,omitempty"`

	Adapter struct {
		HTTPAddress   string   `json:"http_address"`
		BulkTimeout   Duration `json:"bulk_timeout"`
		ChatTimeout   Duration `json:"chat_timeout"`
		HealthTimeout Duration `json:"health_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		HealthInterval Duration `json:"health_interval"`
	} `json:"workers,omitempty"`

	Log struct {
		File  string `json:"file"`
		Level string `json:"level"`
	} `json:"log,omitempty"`

	Server struct {
		HTTPAddress string   `json:"http_address"`
		FrameDelay  Duration `json:"frame_delay"`
	} `json:"server,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			DisableStreaming:  jsonCfg.App.DisableStreaming,
			SaveRemoteHistory: jsonCfg.App.SaveRemoteHistory,
			HistoryLimit:      jsonCfg.App.HistoryLimit,
		},
		Adapter: Adapter{
			HTTPAddress:   jsonCfg.Adapter.HTTPAddress,
			BulkTimeout:   time.Duration(jsonCfg.Adapter.BulkTimeout),
			ChatTimeout:   time.Duration(jsonCfg.Adapter.ChatTimeout),
			HealthTimeout: time.Duration(jsonCfg.Adapter.HealthTimeout),
		},
		Storage: Storage{DB: DB{DSN: jsonCfg.Storage.DB.DSN}},
		Workers: Workers{HealthInterval: time.Duration(jsonCfg.Workers.HealthInterval)},
		Log:     Log{File: jsonCfg.Log.File, Level: jsonCfg.Log.Level},
		Server: Server{
			HTTPAddress: jsonCfg.Server.HTTPAddress,
			FrameDelay:  time.Duration(jsonCfg.Server.FrameDelay),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" as well as raw nanosecond numbers.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
