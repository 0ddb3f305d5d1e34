// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/models"
)

// chartModules are the installed chart modules, ordered by title.
var chartModules = []models.ChartModule{
	{Name: "ancestors_chart", Title: "Ancestors", Description: "A chart of an individual’s ancestors.", DefaultAccess: models.AccessVisitors},
	{Name: "compact_tree_chart", Title: "Compact tree", Description: "A chart of an individual’s ancestors, as a compact tree.", DefaultAccess: models.AccessVisitors},
	{Name: "descendancy_chart", Title: "Descendants", Description: "A chart of an individual’s descendants.", DefaultAccess: models.AccessVisitors},
	{Name: "family_book_chart", Title: "Family book", Description: "A chart of an individual’s ancestors and descendants, as a family book.", DefaultAccess: models.AccessVisitors},
	{Name: "fan_chart", Title: "Fan chart", Description: "A fan chart of an individual’s ancestors.", DefaultAccess: models.AccessVisitors},
	{Name: "hourglass_chart", Title: "Hourglass chart", Description: "An hourglass chart of an individual’s ancestors and descendants.", DefaultAccess: models.AccessVisitors},
	{Name: "tree", Title: "Interactive tree", Description: "An interactive tree, showing all the ancestors and descendants of an individual.", DefaultAccess: models.AccessVisitors},
	{Name: "lifespans_chart", Title: "Lifespans", Description: "A chart of individuals’ lifespans.", DefaultAccess: models.AccessVisitors},
	{Name: "pedigree_chart", Title: "Pedigree", Description: "A chart of an individual’s ancestors, formatted as a tree.", DefaultAccess: models.AccessVisitors},
	{Name: "relationships_chart", Title: "Relationships", Description: "A chart displaying relationships between two individuals.", DefaultAccess: models.AccessVisitors},
	{Name: "statistics_chart", Title: "Statistics", Description: "Various statistics charts.", DefaultAccess: models.AccessVisitors},
	{Name: "timeline_chart", Title: "Timeline", Description: "A timeline displaying individual events.", DefaultAccess: models.AccessVisitors},
}

type moduleAccessService struct {
	moduleAccessRepository store.ModuleAccessRepository
	treeRepository         store.TreeRepository

	modules []models.ChartModule
	hashKey string

	logger *logger.Logger
}

func NewModuleAccessService(access store.ModuleAccessRepository, trees store.TreeRepository, cfg config.App, logger *logger.Logger) ModuleAccessService {
	return &moduleAccessService{
		moduleAccessRepository: access,
		treeRepository:         trees,
		modules:                chartModules,
		hashKey:                cfg.HashKey,
		logger:                 logger,
	}
}

func (s *moduleAccessService) ChartModules() []models.ChartModule {
	return append([]models.ChartModule(nil), s.modules...)
}

// ChartAccessMatrix returns every chart module × tree cell with its stored
// level, or the module's default where nothing was stored.
func (s *moduleAccessService) ChartAccessMatrix(ctx context.Context) (models.ModuleAccessMatrix, error) {
	log := logger.FromContext(ctx)

	trees, err := s.treeRepository.AllTrees(ctx)
	if err != nil {
		log.Err(err).Str("func", "moduleAccessService.ChartAccessMatrix").Msg("error loading trees")
		return models.ModuleAccessMatrix{}, fmt.Errorf("error loading trees: %w", err)
	}

	grants, err := s.moduleAccessRepository.AccessLevels(ctx, models.ComponentChart)
	if err != nil {
		log.Err(err).Str("func", "moduleAccessService.ChartAccessMatrix").Msg("error loading access levels")
		return models.ModuleAccessMatrix{}, fmt.Errorf("error loading access levels: %w", err)
	}

	stored := make(map[models.ModuleAccessKey]models.AccessLevel, len(grants))
	for _, g := range grants {
		stored[g.ModuleAccessKey] = g.Level
	}

	matrix := models.ModuleAccessMatrix{
		Modules: s.ChartModules(),
		Trees:   trees,
		Levels:  make(map[models.ModuleAccessKey]models.AccessLevel, len(s.modules)*len(trees)),
	}
	for _, m := range s.modules {
		for _, t := range trees {
			key := models.ModuleAccessKey{ModuleName: m.Name, TreeID: t.TreeID}
			if level, ok := stored[key]; ok {
				matrix.Levels[key] = level
			} else {
				matrix.Levels[key] = m.DefaultAccess
			}
		}
	}

	return matrix, nil
}

// SaveChartAccess stores a level for every chart module × tree cell. Cells
// missing from submitted, or holding anything but a known level, get the
// module's default. Nothing is ever deleted.
func (s *moduleAccessService) SaveChartAccess(ctx context.Context, rc models.RequestContext, submitted map[models.ModuleAccessKey]string) (models.Outcome, error) {
	log := logger.FromContext(ctx)

	if !validCSRF(s.hashKey, rc) {
		log.Warn().Str("func", "moduleAccessService.SaveChartAccess").Int64("actor", rc.ActorID()).Msg("anti-forgery token mismatch")
		return models.OutcomeIgnored, nil
	}

	trees, err := s.treeRepository.AllTrees(ctx)
	if err != nil {
		return "", fmt.Errorf("error loading trees: %w", err)
	}

	for _, m := range s.modules {
		for _, t := range trees {
			key := models.ModuleAccessKey{ModuleName: m.Name, TreeID: t.TreeID}

			level, ok := models.ParseAccessLevel(submitted[key])
			if !ok {
				level = m.DefaultAccess
			}

			err = s.moduleAccessRepository.UpsertAccessLevel(ctx, models.ComponentChart, models.ModuleAccessGrant{ModuleAccessKey: key, Level: level})
			if err != nil {
				log.Err(err).Str("func", "moduleAccessService.SaveChartAccess").
					Str("module", m.Name).
					Int64("tree_id", t.TreeID).
					Msg("error storing access level")
				return "", fmt.Errorf("error storing access level: %w", err)
			}
		}
	}

	log.Info().Str("func", "moduleAccessService.SaveChartAccess").Int64("actor", rc.ActorID()).Msg("chart access levels saved")

	return models.OutcomeUpdated, nil
}
