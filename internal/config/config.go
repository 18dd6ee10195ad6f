// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for go-pin-keeper.
// It is populated by merging environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the message integrity key.
	App App `envPrefix:"APP_"`

	// Storage holds the local key-value store settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Remote holds the bookmarking service endpoints, session cookies,
	// timeouts, retry and throttle parameters.
	Remote Remote `envPrefix:"REMOTE_"`

	// Router holds the address of the background message endpoint.
	Router Router `envPrefix:"ROUTER_"`

	// Workers holds configuration for background worker processes.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds output settings for interactive contexts.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// HashKey is the HMAC key used to sign and verify router messages
	// (the HashSHA256 header).
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for the local store.
type Storage struct {
	// DB holds the SQLite database settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the SQLite key-value store.
type DB struct {
	// DSN is the path of the SQLite database file shared by all contexts.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// PollInterval bounds how long a subscriber may miss a change written by
	// another process when file notifications are unavailable.
	// Env: STORAGE_DB_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Remote holds settings for the bookmarking service.
type Remote struct {
	// APIBaseURL is the root of the JSON API (e.g. "https://api.pinboard.in/v1").
	// Env: REMOTE_API_URL
	APIBaseURL string `env:"API_URL"`

	// SettingsURL is the account settings page used to probe the browser
	// session and to harvest the API token.
	// Env: REMOTE_SETTINGS_URL
	SettingsURL string `env:"SETTINGS_URL"`

	// SessionCookies is a Cookie header value ("name=value; other=value")
	// carrying the logged-in web session.
	// Env: REMOTE_SESSION_COOKIES
	SessionCookies string `env:"SESSION_COOKIES"`

	// RequestTimeout applies to every outbound request, including the
	// session probe.
	// Env: REMOTE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// RetryCount is the number of retries after a 429 response.
	// Env: REMOTE_RETRY_COUNT
	RetryCount int `env:"RETRY_COUNT"`

	// RetryWaitTime is the base delay of the exponential backoff.
	// Env: REMOTE_RETRY_WAIT_TIME
	RetryWaitTime time.Duration `env:"RETRY_WAIT_TIME"`

	// RetryMaxWaitTime caps a single backoff delay.
	// Env: REMOTE_RETRY_MAX_WAIT_TIME
	RetryMaxWaitTime time.Duration `env:"RETRY_MAX_WAIT_TIME"`

	// MinRequestInterval is the minimum spacing between API calls.
	// Env: REMOTE_MIN_REQUEST_INTERVAL
	MinRequestInterval time.Duration `env:"MIN_REQUEST_INTERVAL"`
}

// Router holds settings of the background message endpoint.
type Router struct {
	// HTTPAddress is the "host:port" the background listens on and clients
	// send messages to.
	// Env: ROUTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single message round trip.
	// Env: ROUTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SyncInterval enables periodic sync when positive. Zero disables it.
	// Env: WORKERS_SYNC_INTERVAL
	SyncInterval time.Duration `env:"SYNC_INTERVAL"`
}

// Log holds log output settings.
type Log struct {
	// FilePath is where interactive contexts write their logs.
	// Env: LOG_FILE
	FilePath string `env:"FILE"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first non-zero value wins, in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
