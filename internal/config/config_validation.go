// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net/url"
	"strings"
)

// validate rejects values that no view can work with.
func (cfg *StructuredConfig) validate() error {
	if cfg.Workers.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *BackgroundConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	if err := cfg.Router.validate(); err != nil {
		return err
	}

	if !isHTTPURL(cfg.Remote.APIBaseURL) || !isHTTPURL(cfg.Remote.SettingsURL) {
		return ErrInvalidRemoteConfigs
	}

	if cfg.Remote.RequestTimeout <= 0 || cfg.Remote.RetryCount < 0 ||
		cfg.Remote.RetryWaitTime > cfg.Remote.RetryMaxWaitTime ||
		cfg.Remote.MinRequestInterval < 0 {
		return ErrInvalidRemoteConfigs
	}

	if cfg.SyncInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if err := cfg.Storage.validate(); err != nil {
		return err
	}

	return cfg.Router.validate()
}

// The store is shared between processes, so an in-memory database is useless.
func (cfg StorageConfig) validate() error {
	if cfg.DSN == "" || strings.Contains(cfg.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.PollInterval <= 0 {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg RouterConfig) validate() error {
	if cfg.HTTPAddress == "" || cfg.RequestTimeout <= 0 {
		return ErrInvalidRouterConfigs
	}

	if cfg.HashKey == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func isHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
