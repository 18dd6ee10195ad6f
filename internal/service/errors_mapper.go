// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/app"
	"github.com/MKhiriev/go-pin-keeper/internal/validators"
)

// SyncErrorMessage translates a sync failure into the message persisted
// under the pinboardError key.
func SyncErrorMessage(err error) string {
	switch {
	case errors.Is(err, adapter.ErrMissingCredential):
		return app.MsgSyncErrorNoToken
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgSyncErrorAuth
	case errors.Is(err, adapter.ErrTooManyRequests):
		return app.MsgSyncErrorTooMany
	case isConnectError(err):
		return app.MsgSyncErrorConnect
	}

	return fmt.Sprintf(app.MsgSyncErrorDefault, err)
}

// AddErrorMessage translates a failed bookmark save into the message shown
// to the user.
func AddErrorMessage(err error) string {
	switch {
	case errors.Is(err, validators.ErrEmptyURL), errors.Is(err, validators.ErrInvalidURL):
		return app.MsgAddErrorURL
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrMissingCredential):
		return app.MsgAddErrorAuth
	case isConnectError(err):
		return app.MsgAddErrorAjax
	}

	return app.MsgAddErrorDefault
}

// isConnectError reports transport failures, timeouts and server errors.
func isConnectError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return true
	}

	var reqErr *adapter.RemoteRequestFailedError
	return errors.As(err, &reqErr) && reqErr.StatusCode >= http.StatusInternalServerError
}
