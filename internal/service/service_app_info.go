// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	userRepository store.UserRepository
	treeRepository store.TreeRepository

	logger *logger.Logger
}

// NewAppInfoService fails when the build carries no version, so that a
// misconfigured release is noticed at startup.
func NewAppInfoService(buildInfo models.AppBuildInfo, users store.UserRepository, trees store.TreeRepository, logger *logger.Logger) (AppInfoService, error) {
	if buildInfo.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		buildInfo:      buildInfo,
		userRepository: users,
		treeRepository: trees,
		logger:         logger,
	}, nil
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}

func (s *appInfoService) GetSiteSummary(ctx context.Context) (models.SiteSummary, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepository.CountUsers(ctx)
	if err != nil {
		log.Err(err).Str("func", "appInfoService.GetSiteSummary").Msg("error counting users")
		return models.SiteSummary{}, fmt.Errorf("error counting users: %w", err)
	}

	trees, err := s.treeRepository.AllTrees(ctx)
	if err != nil {
		log.Err(err).Str("func", "appInfoService.GetSiteSummary").Msg("error loading trees")
		return models.SiteSummary{}, fmt.Errorf("error loading trees: %w", err)
	}

	return models.SiteSummary{
		Version: s.buildInfo.Version,
		Users:   users,
		Trees:   len(trees),
	}, nil
}
