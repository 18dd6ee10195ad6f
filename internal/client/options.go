package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/mirror"
	"github.com/MKhiriev/go-pin-keeper/internal/router"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/internal/tui"
	"github.com/MKhiriev/go-pin-keeper/models"
)

// OptionsApp is a client context: it reads the shared store through its own
// mirror and sends commands to the background.
type OptionsApp struct {
	storages *store.Storages
	mirror   *mirror.Mirror
	router   *router.Client
	settings service.SettingsService
	info     models.AppBuildInfo

	logger *logger.Logger
}

func NewOptionsApp(ctx context.Context, cfg *config.ClientConfig, info models.AppBuildInfo, log *logger.Logger) (*OptionsApp, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	messenger, err := adapter.NewHTTPMessenger(cfg.Router, log)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("create messenger: %w", err), storages.Close())
	}

	return newOptionsApp(storages, messenger, info, log), nil
}

func newOptionsApp(storages *store.Storages, messenger adapter.Messenger, info models.AppBuildInfo, log *logger.Logger) *OptionsApp {
	return &OptionsApp{
		storages: storages,
		mirror:   mirror.New(storages.KV, log),
		router:   router.NewClient(messenger),
		settings: service.NewSettingsService(storages.KV),
		info:     info,
		logger:   log,
	}
}

// Run hydrates the mirror and shows the options UI until the user quits.
func (a *OptionsApp) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(ctx))
	defer cancel()

	if err := a.mirror.Start(ctx); err != nil {
		return fmt.Errorf("start mirror: %w", err)
	}

	return tui.New(a.mirror, a.router, a.settings, a.info, a.logger).Run(ctx)
}

func (a *OptionsApp) Close() error {
	return a.storages.Close()
}
