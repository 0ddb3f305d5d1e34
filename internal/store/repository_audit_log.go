// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
)

const logTypeAuth = "auth"

type auditLogRepository struct {
	*DB
	logger *logger.Logger
}

// NewAuditLogRepository constructs an [AuditLogRepository].
func NewAuditLogRepository(db *DB, logger *logger.Logger) AuditLogRepository {
	return &auditLogRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *auditLogRepository) AddAuthenticationLog(ctx context.Context, message string, userID int64) error {
	query, args, err := buildAddAuditLogQuery(r.builder, logTypeAuth, message, userID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "auditLogRepository.AddAuthenticationLog").
			Str("message", message).
			Msg("failed to write audit log")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
