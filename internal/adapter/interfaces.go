// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter holds the clients of services outside the application.
//
// The only one is the mail relay: [Mailer] hands a rendered
// [models.Notification] to an HTTP relay ([NewHTTPMailer]) or, when no relay
// is configured, only logs it ([NewLogMailer]).
//
// Relay failures are mapped from HTTP status codes by mapRelayError so that
// callers can use [errors.Is] (e.g. [ErrRelayUnavailable] for 5xx).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-tree-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mailer_mock.go -package=mock

// Mailer delivers notifications.
type Mailer interface {
	// Send hands n to the mail collaborator. A nil error means the relay
	// accepted the message, not that it was delivered.
	Send(ctx context.Context, n models.Notification) error
}
