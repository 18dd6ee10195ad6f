package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/config"
	"github.com/MKhiriev/go-pin-keeper/internal/handler"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/mirror"
	"github.com/MKhiriev/go-pin-keeper/internal/router"
	"github.com/MKhiriev/go-pin-keeper/internal/server"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
	"github.com/MKhiriev/go-pin-keeper/internal/workers"
)

type App struct {
	storages *store.Storages
	services *service.Services
	mirror   *mirror.Mirror
	server   server.Server
	workers  *workers.Workers

	logger *logger.Logger
}

// NewApp wires the background process. opener may be nil, in which case
// showOptions requests are only logged.
func NewApp(ctx context.Context, cfg *config.BackgroundConfig, opener router.OptionsOpener, log *logger.Logger) (*App, error) {
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	app, err := newApp(storages, cfg, opener, log)
	if err != nil {
		return nil, errors.Join(err, storages.Close())
	}
	return app, nil
}

func newApp(storages *store.Storages, cfg *config.BackgroundConfig, opener router.OptionsOpener, log *logger.Logger) (*App, error) {
	credentials := service.NewCredentialService(storages.KV, log)

	remote, err := adapter.NewPinboardAdapter(cfg.Remote, credentials, log)
	if err != nil {
		return nil, fmt.Errorf("create remote client: %w", err)
	}

	harvester, err := adapter.NewPageTokenHarvester(cfg.Remote, log)
	if err != nil {
		return nil, fmt.Errorf("create token harvester: %w", err)
	}

	services := service.NewServices(storages, credentials, remote, harvester, log)

	handlers, err := handler.NewHandlers(router.NewDispatcher(services, opener, log), cfg.Router, log)
	if err != nil {
		return nil, fmt.Errorf("create handlers: %w", err)
	}

	srv, err := server.NewServer(handlers, cfg.Router, log)
	if err != nil {
		return nil, fmt.Errorf("create server: %w", err)
	}

	return &App{
		storages: storages,
		services: services,
		mirror:   mirror.New(storages.KV, log),
		server:   srv,
		workers:  workers.NewWorkers(services, cfg.SyncInterval, log),
		logger:   log,
	}, nil
}

// Addr returns the address the message endpoint listens on.
func (a *App) Addr() string {
	return a.server.Addr()
}

// Run serves messages until ctx is done or a stop signal arrives. The
// startup sync runs once the endpoint accepts requests.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(a.logger.WithContext(ctx))
	defer cancel()

	if err := a.mirror.Start(ctx); err != nil {
		return fmt.Errorf("start mirror: %w", err)
	}
	go a.logChanges()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- a.server.RunServer(ctx)
	}()

	a.workers.Run(ctx)

	err := <-serveErr
	cancel()
	a.services.SyncJob.Stop()
	<-a.mirror.Done()

	return err
}

func (a *App) logChanges() {
	for key := range a.mirror.Changes() {
		a.logger.Debug().Str("func", "App.logChanges").
			Str("key", key).
			Int("bookmarks", len(a.mirror.Bookmarks())).
			Str("user", a.mirror.Username()).
			Msg("state changed")
	}
}

func (a *App) Close() error {
	return a.storages.Close()
}
