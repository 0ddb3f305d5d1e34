// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business rules of the administration pages.
// Services receive an explicit [models.RequestContext] instead of reading
// the current tree and user from global state, talk to storage through the
// store repositories and never render anything.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-tree-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserAdminService manages site accounts.
type UserAdminService interface {
	// ListUsers returns one page of the user list. A non-zero page length
	// is remembered as the actor's preferred page size.
	ListUsers(ctx context.Context, rc models.RequestContext, query models.UserListQuery) (models.UserListResult, error)
	// PageSize returns the actor's preferred user list page size.
	PageSize(ctx context.Context, rc models.RequestContext) (int, error)

	// EditForm loads the edit form of userID, or a blank form for 0.
	EditForm(ctx context.Context, userID int64) (models.UserEditView, error)
	SaveUser(ctx context.Context, rc models.RequestContext, form models.UserForm) (models.SaveResult, error)
	DeleteUser(ctx context.Context, rc models.RequestContext, userID int64) (models.SaveResult, error)

	// CleanupReport flags accounts that look abandoned. Nothing is changed.
	CleanupReport(ctx context.Context, rc models.RequestContext, months int, now time.Time) (models.CleanupReport, error)
	// CleanupCommit deletes the selected accounts and returns their names.
	CleanupCommit(ctx context.Context, rc models.RequestContext, selected map[int64]bool) ([]string, error)
}

// ModuleAccessService manages who may see each chart module in each tree.
type ModuleAccessService interface {
	ChartModules() []models.ChartModule
	ChartAccessMatrix(ctx context.Context) (models.ModuleAccessMatrix, error)
	SaveChartAccess(ctx context.Context, rc models.RequestContext, submitted map[models.ModuleAccessKey]string) (models.Outcome, error)
}

// TopGivenNamesService renders and configures top given names blocks.
type TopGivenNamesService interface {
	Descriptor() models.BlockDescriptor
	// ResolveBlock loads a block and the tree it is shown in. For personal
	// page blocks the tree is taken from treeName, or the first tree.
	ResolveBlock(ctx context.Context, blockID int64, treeName string) (models.Block, *models.Tree, error)
	Block(ctx context.Context, rc models.RequestContext, blockID int64, overrides map[string]string) (models.TopGivenNamesBlock, error)
	Configure(ctx context.Context, rc models.RequestContext, blockID int64, form models.BlockConfigForm) (models.BlockSettings, models.Outcome, error)
}

// SessionService signs users in and resolves the actor and tree of a
// request.
type SessionService interface {
	SignIn(ctx context.Context, userName, password string) (models.SessionToken, error)
	ParseSession(ctx context.Context, token string) (*models.Actor, error)
	ResolveActor(ctx context.Context, userID int64) (*models.Actor, error)
	ResolveActorByName(ctx context.Context, userName string) (*models.Actor, error)
	// ResolveTree returns the tree named treeName, or the first tree when
	// treeName is empty. A site without trees yields nil.
	ResolveTree(ctx context.Context, treeName string) (*models.Tree, error)
	// CSRFToken is the anti-forgery token the actor's forms must carry.
	CSRFToken(actor *models.Actor) string
}

// AppInfoService reports what is running.
type AppInfoService interface {
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
	// GetSiteSummary counts accounts and trees for the control panel footer.
	GetSiteSummary(ctx context.Context) (models.SiteSummary, error)
}
