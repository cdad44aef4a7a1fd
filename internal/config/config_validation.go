// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks the merged [StructuredConfig]. Only the pieces every binary
// needs are checked here; each view validates its own fields.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.HistoryLimit < 0 {
		return ErrInvalidAppConfigs
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" ||
		cfg.Adapter.BulkTimeout <= 0 ||
		cfg.Adapter.ChatTimeout <= 0 ||
		cfg.Adapter.HealthTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HealthInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *StubConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.FrameDelay < 0 {
		return ErrInvalidServerConfigs
	}
	return nil
}
