// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-tree-admin/internal/logger"

// Storages bundles every repository backed by one database.
type Storages struct {
	UserRepository         UserRepository
	UserSettingRepository  UserSettingRepository
	TreeRepository         TreeRepository
	ModuleAccessRepository ModuleAccessRepository
	BlockSettingRepository BlockSettingRepository
	NameStatsRepository    NameStatsRepository
	AuditLogRepository     AuditLogRepository
}

// NewStorages constructs all repositories on db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		UserSettingRepository:  NewUserSettingRepository(db, logger),
		TreeRepository:         NewTreeRepository(db, logger),
		ModuleAccessRepository: NewModuleAccessRepository(db, logger),
		BlockSettingRepository: NewBlockSettingRepository(db, logger),
		NameStatsRepository:    NewNameStatsRepository(db, logger),
		AuditLogRepository:     NewAuditLogRepository(db, logger),
	}
}
