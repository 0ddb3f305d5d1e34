// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "fmt"

type confirmModel struct {
	count int
}

func (m confirmModel) View() string {
	noun := "accounts"
	if m.count == 1 {
		noun = "account"
	}
	content := fmt.Sprintf("Delete %d %s? This cannot be undone.\n\n", m.count, noun)
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
