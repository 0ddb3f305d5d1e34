// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-tree-admin/models"
)

// UserRepository stores site accounts.
type UserRepository interface {
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	// FindUserByUserName matches case-insensitively.
	FindUserByUserName(ctx context.Context, userName string) (models.User, error)
	// FindUserByEmail matches case-insensitively.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	UpdateUser(ctx context.Context, user models.User) error
	SetPassword(ctx context.Context, userID int64, passwordHash string) error
	// DeleteUser removes the account together with all its settings.
	DeleteUser(ctx context.Context, userID int64) error
	// AllUsers returns every real account ordered by user name.
	AllUsers(ctx context.Context) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
	// ListUsers returns one page of the filtered, sorted user list and the
	// number of users matching the filter.
	ListUsers(ctx context.Context, query models.UserListQuery) ([]models.UserListRow, int, error)
}

// UserSettingRepository stores per-user key/value preferences.
type UserSettingRepository interface {
	GetSettings(ctx context.Context, userID int64) (map[string]string, error)
	// SetSettings upserts every entry as an independent statement.
	SetSettings(ctx context.Context, userID int64, settings map[string]string) error
}

// TreeRepository stores trees and the tree-scoped user preferences.
type TreeRepository interface {
	AllTrees(ctx context.Context) ([]models.Tree, error)
	FindTreeByID(ctx context.Context, treeID int64) (models.Tree, error)
	FindTreeByName(ctx context.Context, name string) (models.Tree, error)
	UserPreferences(ctx context.Context, treeID, userID int64) (map[string]string, error)
	// SetUserPreference stores value, or deletes the preference when value is nil.
	SetUserPreference(ctx context.Context, treeID, userID int64, name string, value *string) error
}

// ModuleAccessRepository stores module access levels per tree and component.
type ModuleAccessRepository interface {
	AccessLevels(ctx context.Context, component string) ([]models.ModuleAccessGrant, error)
	// UpsertAccessLevel replaces the stored level of the grant's cell.
	UpsertAccessLevel(ctx context.Context, component string, grant models.ModuleAccessGrant) error
}

// BlockSettingRepository stores placed blocks and their settings.
type BlockSettingRepository interface {
	FindBlock(ctx context.Context, blockID int64) (models.Block, error)
	BlockSettings(ctx context.Context, blockID int64) (map[string]string, error)
	SetBlockSetting(ctx context.Context, blockID int64, name, value string) error
}

// NameStatsRepository reads the precomputed given name frequencies.
type NameStatsRepository interface {
	// TopGivenNames returns at most limit names of sex used at least
	// threshold times, most frequent first.
	TopGivenNames(ctx context.Context, treeID int64, sex models.Sex, threshold, limit int) ([]models.GivenNameCount, error)
}

// AuditLogRepository appends to the audit log.
type AuditLogRepository interface {
	// AddAuthenticationLog records message on behalf of userID; 0 means no user.
	AddAuthenticationLog(ctx context.Context, message string, userID int64) error
}
