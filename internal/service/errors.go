package service

import "errors"

var (
	// ErrSessionNotLoggedIn is returned by authentication while the web
	// session of the bookmarking service is logged out.
	ErrSessionNotLoggedIn = errors.New("web session is not logged in")

	ErrInvalidBookmark = errors.New("invalid bookmark")
	ErrDecodingState   = errors.New("failed to decode persisted value")
)
