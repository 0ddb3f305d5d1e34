// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"maps"
	"slices"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
)

type userSettingRepository struct {
	*DB
	logger *logger.Logger
}

// NewUserSettingRepository constructs a [UserSettingRepository].
func NewUserSettingRepository(db *DB, logger *logger.Logger) UserSettingRepository {
	return &userSettingRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *userSettingRepository) GetSettings(ctx context.Context, userID int64) (map[string]string, error) {
	query, args, err := buildGetUserSettingsQuery(r.builder, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err := r.queryNameValues(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "userSettingRepository.GetSettings").
			Int64("user_id", userID).
			Msg("failed to read user settings")
		return nil, err
	}

	return settings, nil
}

// SetSettings upserts settings in key order. A failing entry stops the loop;
// entries written before it stay written.
func (r *userSettingRepository) SetSettings(ctx context.Context, userID int64, settings map[string]string) error {
	log := logger.FromContext(ctx)

	for _, name := range slices.Sorted(maps.Keys(settings)) {
		query, args, err := buildUpsertUserSettingQuery(r.builder, userID, name, settings[name])
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		err = r.withRetry(ctx, func() error {
			_, execErr := r.DB.ExecContext(ctx, query, args...)
			return execErr
		})
		if err != nil {
			log.Err(err).
				Str("func", "userSettingRepository.SetSettings").
				Int64("user_id", userID).
				Str("setting", name).
				Msg("failed to write user setting")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// queryNameValues collects a two-column (name, value) result set.
func (db *DB) queryNameValues(ctx context.Context, query string, args []any) (map[string]string, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make(map[string]string)
	for rows.Next() {
		var name, value string
		if scanErr := rows.Scan(&name, &value); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		values[name] = value
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return values, nil
}
