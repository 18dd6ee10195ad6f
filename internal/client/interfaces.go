// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract of a runnable process.
type Client interface {
	// Run starts the process and blocks until ctx is done or it stops.
	Run(ctx context.Context) error
	// Close releases the resources acquired by the constructor.
	Close() error
}

var (
	_ Client = (*App)(nil)
	_ Client = (*OptionsApp)(nil)
)
