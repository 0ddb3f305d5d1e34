// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

type blockSettingRepository struct {
	*DB
	logger *logger.Logger
}

// NewBlockSettingRepository constructs a [BlockSettingRepository].
func NewBlockSettingRepository(db *DB, logger *logger.Logger) BlockSettingRepository {
	return &blockSettingRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *blockSettingRepository) FindBlock(ctx context.Context, blockID int64) (models.Block, error) {
	query, args, err := buildFindBlockQuery(r.builder, blockID)
	if err != nil {
		return models.Block{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		block          models.Block
		treeID, userID sql.NullInt64
	)
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&block.BlockID, &treeID, &userID, &block.ModuleName)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Block{}, ErrBlockNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "blockSettingRepository.FindBlock").Int64("block_id", blockID).Msg("failed to query block")
		return models.Block{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if treeID.Valid {
		block.TreeID = &treeID.Int64
	}
	if userID.Valid {
		block.UserID = &userID.Int64
	}

	return block, nil
}

func (r *blockSettingRepository) BlockSettings(ctx context.Context, blockID int64) (map[string]string, error) {
	query, args, err := buildBlockSettingsQuery(r.builder, blockID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	settings, err := r.queryNameValues(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "blockSettingRepository.BlockSettings").Int64("block_id", blockID).Msg("failed to read block settings")
		return nil, err
	}

	return settings, nil
}

func (r *blockSettingRepository) SetBlockSetting(ctx context.Context, blockID int64, name, value string) error {
	query, args, err := buildUpsertBlockSettingQuery(r.builder, blockID, name, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "blockSettingRepository.SetBlockSetting").
			Int64("block_id", blockID).
			Str("setting", name).
			Msg("failed to write block setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
