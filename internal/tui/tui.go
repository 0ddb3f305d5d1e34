// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal front-end of the inactive user cleanup. It
// loads the cleanup report, lets the operator pick the accounts to delete and
// commits the selection.
package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

// Cleaner runs the two phases of the cleanup.
type Cleaner interface {
	CleanupReport(ctx context.Context, rc models.RequestContext, months int, now time.Time) (models.CleanupReport, error)
	CleanupCommit(ctx context.Context, rc models.RequestContext, selected map[int64]bool) ([]string, error)
}

type TUI struct {
	cleaner Cleaner
	rc      models.RequestContext
	months  int
	logger  *logger.Logger
}

// New prepares a cleanup session acting as rc.Actor. months is the initial
// inactivity threshold.
func New(cleaner Cleaner, rc models.RequestContext, months int, logger *logger.Logger) (*TUI, error) {
	if rc.Actor == nil || !rc.Actor.IsAdmin {
		return nil, ErrNotAdmin
	}

	return &TUI{cleaner: cleaner, rc: rc, months: months, logger: logger}, nil
}

// Run shows the cleanup screen and returns the user names that were deleted.
func (t *TUI) Run(ctx context.Context) ([]string, error) {
	model := newCleanupModel(ctx, t.cleaner, t.rc, t.months, t.logger)
	model.copy = clipboard.WriteAll

	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if runErr != nil {
		return nil, runErr
	}

	result, ok := finalModel.(cleanupModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return nil, ErrUserQuit
	}

	return result.deleted, result.commitErr
}
