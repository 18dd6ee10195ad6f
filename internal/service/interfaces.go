package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/service_mock.go -package=servicemock

// CredentialService holds the API token in the shared store. It satisfies
// [adapter.CredentialSource].
type CredentialService interface {
	// Get returns the held token and whether one is held.
	Get(ctx context.Context) (models.Credential, bool, error)
	// Set stores token as is; no local validation is made.
	Set(ctx context.Context, token models.Credential) error
	// Clear removes the token together with the mirrored bookmarks and the
	// stored update marker.
	Clear(ctx context.Context) error
}

// SyncService refreshes the mirrored bookmarks from the remote service.
type SyncService interface {
	// Sync runs one cycle. A trigger arriving while a cycle is active is
	// dropped and reported as skipped.
	Sync(ctx context.Context) (models.SyncResult, error)
	// State returns the phase of the active cycle, [SyncIdle] when none.
	State() SyncState
}

// SyncJob triggers Sync on a ticker.
type SyncJob interface {
	// Start launches the ticker; a non-positive interval leaves the job idle.
	Start(ctx context.Context, interval time.Duration)
	// Stop blocks until the ticker goroutine has exited.
	Stop()
}

// AuthService obtains the API token from a logged-in web session.
type AuthService interface {
	Authenticate(ctx context.Context, report adapter.TokenReporter) (AuthOutcome, error)
	CheckLoggedIn(ctx context.Context) (bool, error)
}

// SettingsService mutates the user preferences and the last sync error.
type SettingsService interface {
	ToggleDefaultPrivate(ctx context.Context) (bool, error)
	ClearError(ctx context.Context) error
	SetError(ctx context.Context, msg string) error
}

// BookmarkService saves bookmarks and asks for tag suggestions.
type BookmarkService interface {
	// Add saves bookmark remotely, then syncs so every context converges.
	Add(ctx context.Context, bookmark models.NewBookmark) (models.SyncResult, error)
	SuggestTags(ctx context.Context, url string) ([]string, error)
}
