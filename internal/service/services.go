// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-tree-admin/internal/adapter"
	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/crypto"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/models"
)

type Services struct {
	UserAdminService     UserAdminService
	ModuleAccessService  ModuleAccessService
	TopGivenNamesService TopGivenNamesService
	SessionService       SessionService
	AppInfoService       AppInfoService
}

func NewServices(
	storages *store.Storages,
	mailer adapter.Mailer,
	hasher crypto.PasswordHasher,
	cfg *config.StructuredConfig,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) (*Services, error) {
	appInfoService, err := NewAppInfoService(buildInfo, storages.UserRepository, storages.TreeRepository, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		UserAdminService:     NewUserAdminService(storages, mailer, hasher, cfg.App, logger),
		ModuleAccessService:  NewModuleAccessService(storages.ModuleAccessRepository, storages.TreeRepository, cfg.App, logger),
		TopGivenNamesService: NewTopGivenNamesService(storages, cfg.App, logger),
		SessionService:       NewSessionService(storages, hasher, cfg.App, logger),
		AppInfoService:       appInfoService,
	}, nil
}
