// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

var testNow = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

type fakeCleaner struct {
	report    models.CleanupReport
	reportErr error
	months    []int

	committed map[int64]bool
	deleted   []string
	commitErr error
}

func (f *fakeCleaner) CleanupReport(_ context.Context, _ models.RequestContext, months int, _ time.Time) (models.CleanupReport, error) {
	f.months = append(f.months, months)
	r := f.report
	r.Months = months
	return r, f.reportErr
}

func (f *fakeCleaner) CleanupCommit(_ context.Context, _ models.RequestContext, selected map[int64]bool) ([]string, error) {
	f.committed = selected
	return f.deleted, f.commitErr
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var adminRC = models.RequestContext{Actor: &models.Actor{UserID: 1, UserName: "admin", IsAdmin: true}, Token: "csrf"}

func newLoadedModel(t *testing.T, cleaner *fakeCleaner) cleanupModel {
	t.Helper()

	m := newCleanupModel(context.Background(), cleaner, adminRC, 6, logger.Nop())
	m.now = func() time.Time { return testNow }

	next, _ := m.Update(m.loadReport()())
	return next.(cleanupModel)
}

func threeCandidates() models.CleanupReport {
	return models.CleanupReport{Candidates: []models.CleanupCandidate{
		{User: models.User{UserID: 2, UserName: "ann", RealName: "Ann", Email: "ann@example.org"}, Reason: models.CleanupInactive, LastActivity: testNow.AddDate(-1, 0, 0), DeleteByDefault: true},
		{User: models.User{UserID: 3, UserName: "bob", RealName: "Bob", Email: "bob@example.org"}, Reason: models.CleanupUnverified},
		{User: models.User{UserID: 4, UserName: "cy", RealName: "Cy", Email: "cy@example.org"}, Reason: models.CleanupNotApproved, DeleteByDefault: true},
	}}
}

func update(t *testing.T, m cleanupModel, msg tea.Msg) (cleanupModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(cleanupModel), cmd
}

// ─────────────────────────────────────────────
// New
// ─────────────────────────────────────────────

func TestNew_RequiresAdmin(t *testing.T) {
	_, err := New(&fakeCleaner{}, models.RequestContext{}, 6, logger.Nop())
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = New(&fakeCleaner{}, models.RequestContext{Actor: &models.Actor{UserID: 5}}, 6, logger.Nop())
	assert.ErrorIs(t, err, ErrNotAdmin)

	tui, err := New(&fakeCleaner{}, adminRC, 6, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, 6, tui.months)
}

// ─────────────────────────────────────────────
// cleanupModel
// ─────────────────────────────────────────────

func TestCleanupModel_LoadSelectsDefaults(t *testing.T) {
	cleaner := &fakeCleaner{report: threeCandidates()}
	m := newLoadedModel(t, cleaner)

	assert.False(t, m.loading)
	assert.Equal(t, []int{6}, cleaner.months)
	assert.Equal(t, map[int64]bool{2: true, 3: false, 4: true}, m.selected)
	assert.Equal(t, 2, m.selectedCount())

	view := m.View()
	assert.Contains(t, view, "6 months")
	assert.Contains(t, view, "ann")
	assert.Contains(t, view, "inactive, last seen 1 year ago")
	assert.Contains(t, view, "email not verified")
	assert.Contains(t, view, "2 of 3 selected")
}

func TestCleanupModel_MoveAndToggle(t *testing.T) {
	m := newLoadedModel(t, &fakeCleaner{report: threeCandidates()})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.idx)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.True(t, m.selected[3])

	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))
	assert.Equal(t, 2, m.idx)

	m, _ = update(t, m, runes("x"))
	assert.False(t, m.selected[4])
	assert.Equal(t, 2, m.selectedCount())
}

func TestCleanupModel_CycleMonthsReloads(t *testing.T) {
	cleaner := &fakeCleaner{report: threeCandidates()}
	m := newLoadedModel(t, cleaner)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, 7, m.months)

	m, _ = update(t, m, m.loadReport()())
	assert.False(t, m.loading)
	assert.Equal(t, []int{6, 7}, cleaner.months)

	// keys are ignored while loading
	m.loading = true
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, 7, m.months)
}

func TestNextMonths(t *testing.T) {
	tests := []struct {
		months, step, want int
	}{
		{months: 6, step: 1, want: 7},
		{months: 6, step: -1, want: 5},
		{months: 12, step: 1, want: 1},
		{months: 1, step: -1, want: 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, nextMonths(tt.months, tt.step))
	}
}

func TestCleanupModel_CopyEmail(t *testing.T) {
	m := newLoadedModel(t, &fakeCleaner{report: threeCandidates()})

	var copied string
	m.copy = func(s string) error {
		copied = s
		return nil
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, cmd := update(t, m, runes("c"))
	assert.Equal(t, "bob@example.org", copied)
	assert.Equal(t, "Copied bob@example.org", m.status)
	require.NotNil(t, cmd)

	m, _ = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.status)

	m.copy = func(string) error { return errors.New("no clipboard") }
	m, _ = update(t, m, runes("c"))
	assert.Contains(t, m.errMsg, "no clipboard")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.errMsg)
}

func TestCleanupModel_ConfirmAndCommit(t *testing.T) {
	cleaner := &fakeCleaner{report: threeCandidates(), deleted: []string{"ann", "cy"}}
	m := newLoadedModel(t, cleaner)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.confirming)
	assert.Contains(t, m.View(), "Delete 2 accounts?")

	m, _ = update(t, m, runes("n"))
	assert.False(t, m.confirming)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, runes("y"))
	require.NotNil(t, cmd)
	assert.True(t, m.loading)

	m, cmd = update(t, m, m.commit()())
	assert.Equal(t, map[int64]bool{2: true, 4: true}, cleaner.committed)
	assert.Equal(t, []string{"ann", "cy"}, m.deleted)
	assert.NoError(t, m.commitErr)
	assert.False(t, m.quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCleanupModel_NothingSelected(t *testing.T) {
	report := threeCandidates()
	for i := range report.Candidates {
		report.Candidates[i].DeleteByDefault = false
	}
	m := newLoadedModel(t, &fakeCleaner{report: report})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.confirming)
	assert.Equal(t, "Nothing selected", m.status)
}

func TestCleanupModel_ReportError(t *testing.T) {
	m := newLoadedModel(t, &fakeCleaner{reportErr: errors.New("dial tcp 127.0.0.1:5432: connection refused")})

	assert.Equal(t, "Database is unavailable, try again later", m.errMsg)
	assert.Contains(t, m.View(), "Database is unavailable")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.errMsg)
}

func TestCleanupModel_Quit(t *testing.T) {
	m := newLoadedModel(t, &fakeCleaner{report: threeCandidates()})

	m, cmd := update(t, m, runes("q"))
	assert.True(t, m.quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestCleanupModel_EmptyReport(t *testing.T) {
	m := newLoadedModel(t, &fakeCleaner{})

	assert.Contains(t, m.View(), "No accounts match the cleanup rules.")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	assert.Empty(t, m.selected)
}
