// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/models"
)

const statusTimeout = 2 * time.Second

type cleanupModel struct {
	ctx     context.Context
	cleaner Cleaner
	rc      models.RequestContext
	logger  *logger.Logger

	now  func() time.Time
	copy func(string) error

	months     int
	candidates []models.CleanupCandidate
	selected   map[int64]bool
	idx        int

	loading    bool
	confirming bool
	spinner    spinner.Model
	status     string
	errMsg     string

	deleted    []string
	commitErr  error
	quitByUser bool
}

func newCleanupModel(ctx context.Context, cleaner Cleaner, rc models.RequestContext, months int, logger *logger.Logger) cleanupModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return cleanupModel{
		ctx:      ctx,
		cleaner:  cleaner,
		rc:       rc,
		logger:   logger,
		now:      time.Now,
		copy:     func(string) error { return nil },
		months:   months,
		selected: map[int64]bool{},
		loading:  true,
		spinner:  s,
	}
}

func (m cleanupModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadReport())
}

func (m cleanupModel) loadReport() tea.Cmd {
	ctx, cleaner, rc, months, now := m.ctx, m.cleaner, m.rc, m.months, m.now()
	return func() tea.Msg {
		report, err := cleaner.CleanupReport(ctx, rc, months, now)
		return reportLoadedMsg{report: report, err: err}
	}
}

func (m cleanupModel) commit() tea.Cmd {
	ctx, cleaner, rc := m.ctx, m.cleaner, m.rc
	selected := make(map[int64]bool, len(m.selected))
	for id, on := range m.selected {
		if on {
			selected[id] = true
		}
	}

	return func() tea.Msg {
		deleted, err := cleaner.CleanupCommit(ctx, rc, selected)
		return committedMsg{deleted: deleted, err: err}
	}
}

func (m cleanupModel) selectedCount() int {
	n := 0
	for _, c := range m.candidates {
		if m.selected[c.User.UserID] {
			n++
		}
	}
	return n
}

func (m cleanupModel) current() (models.CleanupCandidate, bool) {
	if len(m.candidates) == 0 || m.idx < 0 || m.idx >= len(m.candidates) {
		return models.CleanupCandidate{}, false
	}
	return m.candidates[m.idx], true
}

// nextMonths cycles the threshold through 1..12 in direction step.
func nextMonths(months, step int) int {
	span := models.MaxCleanupMonths - models.MinCleanupMonths + 1
	n := (months - models.MinCleanupMonths + step) % span
	if n < 0 {
		n += span
	}
	return n + models.MinCleanupMonths
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m cleanupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "cleanupModel.Update").Msg("error loading cleanup report")
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}

		m.months = msg.report.Months
		m.candidates = msg.report.Candidates
		m.selected = make(map[int64]bool, len(m.candidates))
		for _, c := range m.candidates {
			m.selected[c.User.UserID] = c.DeleteByDefault
		}
		if m.idx >= len(m.candidates) {
			m.idx = max(len(m.candidates)-1, 0)
		}
		return m, nil

	case committedMsg:
		m.loading = false
		m.deleted = msg.deleted
		m.commitErr = msg.err
		if msg.err != nil {
			m.logger.Err(msg.err).Str("func", "cleanupModel.Update").Strs("deleted", msg.deleted).Msg("cleanup stopped")
		} else {
			m.logger.Info().Str("func", "cleanupModel.Update").Strs("deleted", msg.deleted).Msg("cleanup committed")
		}
		return m, tea.Quit

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m cleanupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		m.quitByUser = true
		return m, tea.Quit
	}

	if m.errMsg != "" {
		if key.Matches(msg, keys.commit) || key.Matches(msg, keys.esc) {
			m.errMsg = ""
		}
		return m, nil
	}

	if m.confirming {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirming = false
			m.loading = true
			return m, tea.Batch(m.spinner.Tick, m.commit())
		case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
			m.confirming = false
		}
		return m, nil
	}

	if m.loading {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.quit):
		m.quitByUser = true
		return m, tea.Quit

	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}

	case key.Matches(msg, keys.down):
		if m.idx < len(m.candidates)-1 {
			m.idx++
		}

	case key.Matches(msg, keys.toggle):
		if c, ok := m.current(); ok {
			m.selected[c.User.UserID] = !m.selected[c.User.UserID]
		}

	case key.Matches(msg, keys.more), key.Matches(msg, keys.less):
		step := 1
		if key.Matches(msg, keys.less) {
			step = -1
		}
		m.months = nextMonths(m.months, step)
		m.loading = true
		return m, tea.Batch(m.spinner.Tick, m.loadReport())

	case key.Matches(msg, keys.copy):
		c, ok := m.current()
		if !ok || c.User.Email == "" {
			return m, nil
		}
		if err := m.copy(c.User.Email); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Copied " + c.User.Email
		return m, clearStatusAfter(statusTimeout)

	case key.Matches(msg, keys.commit):
		if m.selectedCount() == 0 {
			m.status = "Nothing selected"
			return m, clearStatusAfter(statusTimeout)
		}
		m.confirming = true
	}

	return m, nil
}

func (m cleanupModel) View() string {
	title := fmt.Sprintf("Inactive user cleanup: %d months", m.months)
	if m.loading {
		title += "  " + m.spinner.View()
	}

	body := ""
	if !m.loading || m.candidates != nil {
		body = renderCandidates(m.candidates, m.selected, m.idx, m.now())
		body += fmt.Sprintf("\n%d of %d selected\n", m.selectedCount(), len(m.candidates))
	}
	if m.status != "" {
		body += "\n" + m.status + "\n"
	}

	page := renderPage(title, body, "↑/↓ move  space select  ←/→ months  c copy email  enter delete selected")

	switch {
	case m.errMsg != "":
		return lipgloss.JoinVertical(lipgloss.Left, page, errorOverlayModel{message: m.errMsg}.View())
	case m.confirming:
		return lipgloss.JoinVertical(lipgloss.Left, page, confirmModel{count: m.selectedCount()}.View())
	}
	return page
}
