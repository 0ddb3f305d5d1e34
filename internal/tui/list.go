// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/MKhiriev/go-tree-admin/models"
)

const (
	userNameWidth = 16
	realNameWidth = 22
	emailWidth    = 28
	reasonWidth   = 34
)

func reasonText(c models.CleanupCandidate, now time.Time) string {
	switch c.Reason {
	case models.CleanupInactive:
		if c.LastActivity.IsZero() {
			return "inactive, never signed in"
		}
		return "inactive, last seen " + humanize.RelTime(c.LastActivity, now, "ago", "from now")
	case models.CleanupUnverified:
		return "email not verified"
	case models.CleanupNotApproved:
		return "not approved"
	default:
		return "-"
	}
}

// renderCandidates lists the flagged accounts, one per line, marking the
// cursor row and the rows selected for deletion.
func renderCandidates(candidates []models.CleanupCandidate, selected map[int64]bool, cursor int, now time.Time) string {
	if len(candidates) == 0 {
		return "No accounts match the cleanup rules.\n"
	}

	var b strings.Builder
	for i, c := range candidates {
		box := "[ ]"
		if selected[c.User.UserID] {
			box = selectedStyle.Render("[x]")
		}

		row := fmt.Sprintf("%s %s %s %s",
			padText(c.User.UserName, userNameWidth),
			padText(c.User.RealName, realNameWidth),
			padText(c.User.Email, emailWidth),
			fitText(reasonText(c, now), reasonWidth),
		)
		if i == cursor {
			row = cursorStyle.Render(row)
		}

		b.WriteString(box)
		b.WriteString(" ")
		b.WriteString(row)
		b.WriteString("\n")
	}

	return b.String()
}
