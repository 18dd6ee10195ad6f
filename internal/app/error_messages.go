// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing message strings of go-pin-keeper.
//
// Sync messages are persisted to the pinboardError key and shown by every
// context until the user dismisses them. Add messages answer a failed
// addBookmark request. Router messages are written into HTTP response bodies.
package app

const (
	// MsgSyncErrorConnect is persisted when the remote service cannot be
	// reached or answers with a server error.
	MsgSyncErrorConnect = "Server is playin' hard to get. Try hunting later."

	// MsgSyncErrorAuth is persisted when the remote service rejects the
	// credential.
	MsgSyncErrorAuth = "Oof! Seems your username/password need some updating."

	// MsgSyncErrorTooMany is persisted when requests are still throttled
	// after every retry.
	MsgSyncErrorTooMany = "Seems like you're updatin' too fast for the server!"

	// MsgSyncErrorDefault is the template for every other sync failure; %s
	// receives the error text.
	MsgSyncErrorDefault = "Well shucks. Something's busted for serious. (%s)"

	// MsgSyncErrorNoToken is persisted when a sync is requested while no
	// credential is held.
	MsgSyncErrorNoToken = "Can't sync without a token. Log in first."

	MsgAddErrorAuth    = "Oof! Seems your username/password need some updating."
	MsgAddErrorAjax    = "Server is playin' hard to get. Try hunting later."
	MsgAddErrorURL     = "Or not. Your URL blows."
	MsgAddErrorDefault = "You missed!"

	// MsgInvalidMessage is returned when a routed message cannot be decoded.
	MsgInvalidMessage = "invalid message"

	// MsgInvalidHash is returned when the body signature does not match.
	MsgInvalidHash = "invalid message signature"

	// MsgNotLoggedIn is returned by authentication while the web session is
	// logged out.
	MsgNotLoggedIn = "not logged in to the bookmarking service"

	// MsgInternalError is returned for unexpected failures.
	MsgInternalError = "internal error"
)
