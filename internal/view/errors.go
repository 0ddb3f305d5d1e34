// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import "errors"

var (
	ErrParsingTemplate = errors.New("error parsing template")
	ErrUnknownPage     = errors.New("unknown page")
)
