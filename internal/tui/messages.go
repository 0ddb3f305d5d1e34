// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/go-tree-admin/models"

type reportLoadedMsg struct {
	report models.CleanupReport
	err    error
}

type committedMsg struct {
	deleted []string
	err     error
}

type clearStatusMsg struct{}
