// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the outbound clients of go-pin-keeper.
//
// [RemoteClient] talks to the bookmarking service JSON API and probes the
// browser session on its settings page. [TokenHarvester] extracts the API
// token from that page. [Messenger] carries router messages from client
// contexts to the background process.
//
// Non-2xx answers are mapped by mapHTTPError to [*RemoteRequestFailedError],
// which matches [ErrRemoteRequestFailed] and, depending on the status,
// [ErrUnauthorized] or [ErrTooManyRequests] through [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-pin-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// CredentialSource yields the credential attached to every API call.
type CredentialSource interface {
	// Get returns the held credential and whether one is held.
	Get(ctx context.Context) (models.Credential, bool, error)
}

// RemoteClient is the bookmarking service as seen by the sync engine.
//
// Every API call reads the credential first and fails with
// [ErrMissingCredential], without any network I/O, when none is held.
// Answers with status 429 are retried with jittered exponential backoff;
// any other failure is returned at once.
type RemoteClient interface {
	// ProbeUpdateMarker returns the remote "last updated" marker.
	ProbeUpdateMarker(ctx context.Context) (models.SyncMarker, error)

	// FetchAllBookmarks returns the whole remote collection with tags split
	// and sharing decoded.
	FetchAllBookmarks(ctx context.Context) ([]models.Bookmark, error)

	// SuggestTags returns the deduplicated tag suggestions for url.
	SuggestTags(ctx context.Context, url string) ([]string, error)

	// CheckSessionLoggedIn reports whether the ambient web session is logged
	// in: the settings page answers with success and without redirecting.
	// It does not need a credential.
	CheckSessionLoggedIn(ctx context.Context) (bool, error)

	// AddBookmark saves a new bookmark remotely.
	AddBookmark(ctx context.Context, bookmark models.NewBookmark) error
}

// TokenReporter delivers a harvested credential. It returns once the
// credential has been accepted, which is the acknowledgment the harvester
// waits for before releasing the page.
type TokenReporter func(ctx context.Context, token models.Credential) error

// TokenHarvester finds the API token on the logged-in settings page.
type TokenHarvester interface {
	// Harvest loads the page, extracts the token, calls report and releases
	// the page only after report has returned.
	Harvest(ctx context.Context, report TokenReporter) error
}

// Messenger sends router messages to the background process.
type Messenger interface {
	// Send posts one JSON-encodable message and decodes the answer.
	Send(ctx context.Context, message any) (models.MessageResponse, error)
}
