// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

type nameStatsRepository struct {
	*DB
	logger *logger.Logger
}

// NewNameStatsRepository constructs a [NameStatsRepository].
func NewNameStatsRepository(db *DB, logger *logger.Logger) NameStatsRepository {
	return &nameStatsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *nameStatsRepository) TopGivenNames(ctx context.Context, treeID int64, sex models.Sex, threshold, limit int) ([]models.GivenNameCount, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildTopGivenNamesQuery(r.builder, treeID, sex, threshold, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "nameStatsRepository.TopGivenNames").
			Int64("tree_id", treeID).
			Str("sex", string(sex)).
			Msg("failed to query given names")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]models.GivenNameCount, 0, limit)
	for rows.Next() {
		var name models.GivenNameCount
		if scanErr := rows.Scan(&name.Name, &name.Count); scanErr != nil {
			log.Err(scanErr).Str("func", "nameStatsRepository.TopGivenNames").Msg("failed to scan given name row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		names = append(names, name)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "nameStatsRepository.TopGivenNames").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return names, nil
}
