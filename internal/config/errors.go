package config

import "errors"

var (
	// ErrInvalidStorageConfigs is returned when required storage settings
	// (e.g. the database DSN) are missing.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidAdapterConfigs is returned when the client transport
	// settings are incomplete.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configs")

	// ErrInvalidAppConfigs is returned when required application settings
	// (token key, issuer, or the client's own token) are missing.
	ErrInvalidAppConfigs = errors.New("invalid app configs")

	// ErrInvalidWorkerConfigs is returned when worker settings are out of
	// range.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configs")
)
