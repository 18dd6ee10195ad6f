package service

import (
	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/logger"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
)

type Services struct {
	Credentials CredentialService
	Sync        SyncService
	SyncJob     SyncJob
	Auth        AuthService
	Settings    SettingsService
	Bookmarks   BookmarkService
}

// NewServices wires the background services. credentials must be the
// source the remote client was built with.
func NewServices(
	storages *store.Storages,
	credentials CredentialService,
	remote adapter.RemoteClient,
	harvester adapter.TokenHarvester,
	log *logger.Logger,
) *Services {
	syncSvc := NewSyncService(storages.KV, remote, log)

	return &Services{
		Credentials: credentials,
		Sync:        syncSvc,
		SyncJob:     NewSyncJob(syncSvc),
		Auth:        NewAuthService(remote, harvester, credentials, log),
		Settings:    NewSettingsService(storages.KV),
		Bookmarks:   NewBookmarkService(remote, syncSvc, log),
	}
}
