// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"
)

// ErrUserQuit is returned by [TUI.Run] when the operator leaves without
// committing.
var ErrUserQuit = errors.New("cleanup cancelled")

// ErrNotAdmin means the configured actor may not run the cleanup.
var ErrNotAdmin = errors.New("cleanup actor is not an administrator")

func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "database is locked") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Database is unavailable, try again later"
	}

	return err.Error()
}
