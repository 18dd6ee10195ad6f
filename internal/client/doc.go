// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the processes of go-pin-keeper.
//
// The [App] is the background process: it owns the shared store, the remote
// client, the services, the message endpoint and the sync workers. An
// [OptionsApp] is a client context: it mirrors the shared store and talks to
// the background through the router, either from the options UI or from
// one-shot commands.
package client
