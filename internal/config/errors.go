package config

import "errors"

// Validation errors returned when a config view is incomplete or invalid.
var (
	// ErrInvalidRouterConfigs indicates a missing router address or timeout.
	ErrInvalidRouterConfigs = errors.New("invalid router configuration")
	// ErrInvalidRemoteConfigs indicates unusable remote endpoints, timeouts
	// or backoff parameters.
	ErrInvalidRemoteConfigs = errors.New("invalid remote configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN, or a
	// non-positive poll interval.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing hash key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a negative sync interval.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
