// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

type moduleAccessRepository struct {
	*DB
	logger *logger.Logger
}

// NewModuleAccessRepository constructs a [ModuleAccessRepository].
func NewModuleAccessRepository(db *DB, logger *logger.Logger) ModuleAccessRepository {
	return &moduleAccessRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *moduleAccessRepository) AccessLevels(ctx context.Context, component string) ([]models.ModuleAccessGrant, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAccessLevelsQuery(r.builder, component)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "moduleAccessRepository.AccessLevels").Str("component", component).Msg("failed to query access levels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	grants := make([]models.ModuleAccessGrant, 0, 16)
	for rows.Next() {
		var (
			grant models.ModuleAccessGrant
			level int
		)
		if scanErr := rows.Scan(&grant.ModuleName, &grant.TreeID, &level); scanErr != nil {
			log.Err(scanErr).Str("func", "moduleAccessRepository.AccessLevels").Msg("failed to scan access level row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		grant.Level = models.AccessLevel(level)
		grants = append(grants, grant)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "moduleAccessRepository.AccessLevels").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return grants, nil
}

func (r *moduleAccessRepository) UpsertAccessLevel(ctx context.Context, component string, grant models.ModuleAccessGrant) error {
	query, args, err := buildUpsertAccessLevelQuery(r.builder, component, grant)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "moduleAccessRepository.UpsertAccessLevel").
			Str("module", grant.ModuleName).
			Int64("tree_id", grant.TreeID).
			Msg("failed to store access level")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
