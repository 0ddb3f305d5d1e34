// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidID is returned for a user or block id that is not a
	// positive integer.
	ErrInvalidID = errors.New("invalid id")

	// ErrUnknownAction is returned for a POST whose "action" field names no
	// operation.
	ErrUnknownAction = errors.New("unknown action")
)
