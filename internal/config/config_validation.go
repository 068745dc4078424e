// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nikita Denisov

package config

import "time"

// Defaults applied after all sources are merged, before validation.
const (
	DefaultHTTPAddress      = "localhost:8080"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultAutosaveInterval = 30 * time.Second
)

func applyDefaults(cfg *StructuredConfig) {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Workers.AutosaveInterval == 0 {
		cfg.Workers.AutosaveInterval = DefaultAutosaveInterval
	}
}

// validate checks that the final merged [StructuredConfig] satisfies
// invariants shared by both binaries. Role-specific requirements (DSN for
// the server, token for the client) are checked in the respective
// derivations, since one binary's required field is the other's noise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.AutosaveInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.Token == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
