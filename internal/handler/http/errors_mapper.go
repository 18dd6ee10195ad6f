package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
	"github.com/MKhiriev/go-pin-keeper/internal/router"
	"github.com/MKhiriev/go-pin-keeper/internal/service"
	"github.com/MKhiriev/go-pin-keeper/internal/store"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is matched in order, so wrapped errors resolve to the
// first listed cause.
var errorStatuses = []errorStatus{
	{router.ErrMalformedMessage, http.StatusBadRequest},
	{service.ErrInvalidBookmark, http.StatusBadRequest},
	{store.ErrEmptyKey, http.StatusBadRequest},

	{adapter.ErrMissingCredential, http.StatusUnauthorized},
	{adapter.ErrUnauthorized, http.StatusUnauthorized},
	{adapter.ErrTooManyRequests, http.StatusTooManyRequests},
	{adapter.ErrNotDone, http.StatusBadGateway},
	{adapter.ErrTokenNotFound, http.StatusBadGateway},
	{adapter.ErrRemoteRequestFailed, http.StatusBadGateway},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}
