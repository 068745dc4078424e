package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// Token is the bearer token issued by the identity provider.
	Token string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the sketchkeep server.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// SnapshotPath is the SQLite file used for the offline note snapshot.
	// Empty means the snapshot is disabled.
	SnapshotPath string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// AutosaveInterval defines how often the autosave job pushes the open
	// note's canvas document.
	AutosaveInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	App     App
	Server  Server
	Storage Storage
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	structured, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	cfg := &ClientConfig{
		App: ClientApp{
			Token: structured.App.Token,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    structured.Adapter.HTTPAddress,
			RequestTimeout: structured.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			SnapshotPath: structured.Storage.Snapshot.Path,
		},
		Workers: ClientWorkers{
			AutosaveInterval: structured.Workers.AutosaveInterval,
		},
	}

	return cfg, cfg.validate()
}

// GetServerConfig builds and validates the server configuration.
func GetServerConfig() (*ServerConfig, error) {
	structured, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error building server config: %w", err)
	}

	cfg := &ServerConfig{
		App:     structured.App,
		Server:  structured.Server,
		Storage: structured.Storage,
	}

	return cfg, cfg.validate()
}
