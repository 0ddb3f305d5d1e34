// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-tree-admin/internal/adapter"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

// ErrQueueFull is returned by [NotificationWorker.Send] when no more
// notifications can be buffered.
var ErrQueueFull = errors.New("notification queue is full")

// DefaultQueueSize is the number of notifications buffered before Send
// starts failing.
const DefaultQueueSize = 64

type queuedNotification struct {
	ctx          context.Context
	notification models.Notification
}

// NotificationWorker is an [adapter.Mailer] that hands notifications to the
// wrapped mailer from a background goroutine, so that a slow relay never
// delays the request that triggered the mail.
type NotificationWorker struct {
	mailer adapter.Mailer
	queue  chan queuedNotification
	logger *logger.Logger
}

// NewNotificationWorker wraps mailer. size <= 0 selects [DefaultQueueSize].
func NewNotificationWorker(mailer adapter.Mailer, size int, logger *logger.Logger) *NotificationWorker {
	if size <= 0 {
		size = DefaultQueueSize
	}

	return &NotificationWorker{
		mailer: mailer,
		queue:  make(chan queuedNotification, size),
		logger: logger,
	}
}

// Send enqueues n. The request-scoped values of ctx (logger, trace id) are
// kept, its cancellation is not.
func (w *NotificationWorker) Send(ctx context.Context, n models.Notification) error {
	select {
	case w.queue <- queuedNotification{ctx: context.WithoutCancel(ctx), notification: n}:
		return nil
	default:
		logger.FromContext(ctx).Error().
			Str("func", "NotificationWorker.Send").
			Str("to", n.ToEmail).
			Msg("notification dropped")
		return ErrQueueFull
	}
}

// Run delivers queued notifications until ctx is cancelled, then delivers
// whatever is still buffered and returns.
func (w *NotificationWorker) Run(ctx context.Context) {
	for {
		select {
		case q := <-w.queue:
			w.deliver(q)
		case <-ctx.Done():
			w.drain()
			return
		}
	}
}

func (w *NotificationWorker) drain() {
	for {
		select {
		case q := <-w.queue:
			w.deliver(q)
		default:
			return
		}
	}
}

func (w *NotificationWorker) deliver(q queuedNotification) {
	if err := w.mailer.Send(q.ctx, q.notification); err != nil {
		logger.FromContext(q.ctx).Err(err).
			Str("func", "NotificationWorker.deliver").
			Str("to", q.notification.ToEmail).
			Str("subject", q.notification.Subject).
			Msg("notification delivery failed")
	}
}
