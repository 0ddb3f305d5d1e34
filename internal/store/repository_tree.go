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

type treeRepository struct {
	*DB
	logger *logger.Logger
}

// NewTreeRepository constructs a [TreeRepository].
func NewTreeRepository(db *DB, logger *logger.Logger) TreeRepository {
	return &treeRepository{
		DB:     db,
		logger: logger,
	}
}

// AllTrees returns every tree ordered by title.
func (r *treeRepository) AllTrees(ctx context.Context) ([]models.Tree, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildAllTreesQuery(r.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "treeRepository.AllTrees").Msg("failed to query trees")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	trees := make([]models.Tree, 0, 4)
	for rows.Next() {
		var tree models.Tree
		if scanErr := rows.Scan(&tree.TreeID, &tree.Name, &tree.Title, &tree.Email); scanErr != nil {
			log.Err(scanErr).Str("func", "treeRepository.AllTrees").Msg("failed to scan tree row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		trees = append(trees, tree)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "treeRepository.AllTrees").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return trees, nil
}

func (r *treeRepository) FindTreeByID(ctx context.Context, treeID int64) (models.Tree, error) {
	query, args, err := buildFindTreeByIDQuery(r.builder, treeID)
	if err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "treeRepository.FindTreeByID", query, args)
}

func (r *treeRepository) FindTreeByName(ctx context.Context, name string) (models.Tree, error) {
	query, args, err := buildFindTreeByNameQuery(r.builder, name)
	if err != nil {
		return models.Tree{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.findOne(ctx, "treeRepository.FindTreeByName", query, args)
}

func (r *treeRepository) findOne(ctx context.Context, funcName, query string, args []any) (models.Tree, error) {
	var tree models.Tree
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(&tree.TreeID, &tree.Name, &tree.Title, &tree.Email)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Tree{}, ErrTreeNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", funcName).Msg("failed to query tree")
		return models.Tree{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return tree, nil
}

func (r *treeRepository) UserPreferences(ctx context.Context, treeID, userID int64) (map[string]string, error) {
	query, args, err := buildTreeUserPreferencesQuery(r.builder, treeID, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	prefs, err := r.queryNameValues(ctx, query, args)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "treeRepository.UserPreferences").
			Int64("tree_id", treeID).
			Int64("user_id", userID).
			Msg("failed to read tree preferences")
		return nil, err
	}

	return prefs, nil
}

func (r *treeRepository) SetUserPreference(ctx context.Context, treeID, userID int64, name string, value *string) error {
	var (
		query string
		args  []any
		err   error
	)
	if value == nil {
		query, args, err = buildDeleteTreeUserPreferenceQuery(r.builder, treeID, userID, name)
	} else {
		query, args, err = buildUpsertTreeUserPreferenceQuery(r.builder, treeID, userID, name, *value)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, query, args...)
		return execErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "treeRepository.SetUserPreference").
			Int64("tree_id", treeID).
			Int64("user_id", userID).
			Str("setting", name).
			Msg("failed to write tree preference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
