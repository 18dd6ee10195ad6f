package config

import (
	"fmt"
	"time"
)

// RemoteConfig carries everything the remote client and the token harvester
// need.
type RemoteConfig struct {
	APIBaseURL         string
	SettingsURL        string
	SessionCookies     string
	RequestTimeout     time.Duration
	RetryCount         int
	RetryWaitTime      time.Duration
	RetryMaxWaitTime   time.Duration
	MinRequestInterval time.Duration
}

// RouterConfig carries the message endpoint address, its timeout and the
// integrity key shared by the background and its clients.
type RouterConfig struct {
	HTTPAddress    string
	RequestTimeout time.Duration
	HashKey        string
}

// StorageConfig carries the local store settings.
type StorageConfig struct {
	DSN          string
	PollInterval time.Duration
}

// BackgroundConfig is the view used by the background process, which owns
// the remote client and the sync engine.
type BackgroundConfig struct {
	Version      string
	Remote       RemoteConfig
	Router       RouterConfig
	Storage      StorageConfig
	SyncInterval time.Duration
}

// ClientConfig is the view used by interactive contexts: they read the
// shared store and talk to the background through the router.
type ClientConfig struct {
	Version string
	Router  RouterConfig
	Storage StorageConfig
	LogFile string
}

// GetBackgroundConfig builds and validates the background view.
func GetBackgroundConfig() (*BackgroundConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	bgCfg := cfg.Background()
	return bgCfg, bgCfg.validate()
}

// GetClientConfig builds and validates the client view.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := cfg.Client()
	return clientCfg, clientCfg.validate()
}

// Background maps the merged config onto [BackgroundConfig].
func (cfg *StructuredConfig) Background() *BackgroundConfig {
	return &BackgroundConfig{
		Version: cfg.App.Version,
		Remote: RemoteConfig{
			APIBaseURL:         cfg.Remote.APIBaseURL,
			SettingsURL:        cfg.Remote.SettingsURL,
			SessionCookies:     cfg.Remote.SessionCookies,
			RequestTimeout:     cfg.Remote.RequestTimeout,
			RetryCount:         cfg.Remote.RetryCount,
			RetryWaitTime:      cfg.Remote.RetryWaitTime,
			RetryMaxWaitTime:   cfg.Remote.RetryMaxWaitTime,
			MinRequestInterval: cfg.Remote.MinRequestInterval,
		},
		Router:       cfg.routerConfig(),
		Storage:      cfg.storageConfig(),
		SyncInterval: cfg.Workers.SyncInterval,
	}
}

// Client maps the merged config onto [ClientConfig].
func (cfg *StructuredConfig) Client() *ClientConfig {
	return &ClientConfig{
		Version: cfg.App.Version,
		Router:  cfg.routerConfig(),
		Storage: cfg.storageConfig(),
		LogFile: cfg.Log.FilePath,
	}
}

func (cfg *StructuredConfig) routerConfig() RouterConfig {
	return RouterConfig{
		HTTPAddress:    cfg.Router.HTTPAddress,
		RequestTimeout: cfg.Router.RequestTimeout,
		HashKey:        cfg.App.HashKey,
	}
}

func (cfg *StructuredConfig) storageConfig() StorageConfig {
	return StorageConfig{
		DSN:          cfg.Storage.DB.DSN,
		PollInterval: cfg.Storage.DB.PollInterval,
	}
}
