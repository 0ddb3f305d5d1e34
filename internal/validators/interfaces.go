// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks submitted admin forms before anything is stored.
// Each failure is one of the errors in this package and carries the message
// shown to the administrator.
package validators

import "context"

// Validator checks a submitted value. When fields are given only those rules
// run, in the given order, and the first failure is returned.
type Validator interface {
	Validate(ctx context.Context, value any, fields ...string) error
}
