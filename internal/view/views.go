// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/go-tree-admin/models"
)

//go:embed templates/*.html
var files embed.FS

// Page names accepted by [Views.Render].
const (
	PageLogin        = "login"
	PageUsers        = "users"
	PageUserEdit     = "user_edit"
	PageUsersCleanup = "users_cleanup"
	PageModuleCharts = "module_charts"
	PageBlock        = "block_top_given_names"
	PageBlockEdit    = "block_edit"
)

// BlockBody is the template of a block without the surrounding page.
const BlockBody = "block-body"

var pages = []string{
	PageLogin,
	PageUsers,
	PageUserEdit,
	PageUsersCleanup,
	PageModuleCharts,
	PageBlock,
	PageBlockEdit,
}

// Views holds one parsed template set per page. Each set is the shared
// layout plus the page's own "content" template.
type Views struct {
	pages map[string]*template.Template
}

// New parses every embedded page.
func New() (*Views, error) {
	v := &Views{pages: make(map[string]*template.Template, len(pages))}

	for _, page := range pages {
		t, err := template.New(page).Funcs(funcs).ParseFS(files, "templates/layout.html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrParsingTemplate, page, err)
		}
		v.pages[page] = t
	}

	return v, nil
}

// Render writes page wrapped in the layout.
func (v *Views) Render(w io.Writer, page string, data any) error {
	return v.RenderFragment(w, page, "layout", data)
}

// RenderFragment writes a single named template of page, without the layout.
func (v *Views) RenderFragment(w io.Writer, page, name string, data any) error {
	t, ok := v.pages[page]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, page)
	}
	return t.ExecuteTemplate(w, name, data)
}

var funcs = template.FuncMap{
	"accessField": func(module string, treeID int64) string {
		return models.ModuleAccessKey{ModuleName: module, TreeID: treeID}.FormField()
	},
	"intOr": func(p *int, fallback int) int {
		if p == nil {
			return fallback
		}
		return *p
	},
	"date": func(t time.Time) string {
		return t.Format("2 January 2006")
	},
	"id": func(id int64) string {
		return strconv.FormatInt(id, 10)
	},
	"cleanupReason": func(c models.CleanupCandidate) string {
		switch c.Reason {
		case models.CleanupInactive:
			return "User’s account has been inactive too long: " + c.LastActivity.Format("2 January 2006")
		case models.CleanupUnverified:
			return "User didn’t verify within 7 days."
		case models.CleanupNotApproved:
			return "User not verified by administrator."
		default:
			return ""
		}
	},
}
