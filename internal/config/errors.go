// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing hash key).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidMailConfigs indicates an unusable mail relay setting.
	ErrInvalidMailConfigs = errors.New("invalid mail configuration")
	// ErrInvalidCleanupConfigs indicates an out-of-range cleanup default.
	ErrInvalidCleanupConfigs = errors.New("invalid cleanup configuration")
)
