// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

type logMailer struct {
	logger *logger.Logger
}

// NewLogMailer returns a [Mailer] that only logs what it would send.
func NewLogMailer(logger *logger.Logger) Mailer {
	return &logMailer{logger: logger}
}

func (m *logMailer) Send(ctx context.Context, n models.Notification) error {
	if n.ToEmail == "" {
		return ErrNoRecipient
	}

	logger.FromContext(ctx).Info().
		Str("func", "logMailer.Send").
		Str("from", n.FromEmail).
		Str("to", n.ToEmail).
		Str("subject", n.Subject).
		Msg("notification not sent: no mail relay")

	return nil
}
