// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pin-keeper/internal/adapter"
)

const msgBackgroundUnavailable = "Background process is not running"

// humanizeError prefers the message chosen by the background, then hides
// transport noise.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	var failed *adapter.RemoteRequestFailedError
	if errors.As(err, &failed) && failed.Body != "" {
		return failed.Body
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "context deadline exceeded") {
		return msgBackgroundUnavailable
	}

	return err.Error()
}
