// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tree-admin/internal/app"
	"github.com/MKhiriev/go-tree-admin/internal/view"
	"github.com/MKhiriev/go-tree-admin/models"
)

const moduleChartsPage = "/admin/module-charts"

func (h *Handler) moduleChartsGet(w http.ResponseWriter, r *http.Request) {
	matrix, err := h.services.ModuleAccessService.ChartAccessMatrix(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.moduleChartsGet", "error loading chart access", err)
		return
	}

	h.render(w, r, http.StatusOK, view.PageModuleCharts, view.ModuleChartsPage{
		Page:   h.page(w, r, "Charts"),
		Matrix: matrix,
		Levels: models.AccessLevels,
	})
}

// moduleChartsPost saves the access matrix. A post that changes nothing,
// such as one with a stale anti-forgery token, shows the page again.
func (h *Handler) moduleChartsPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil || r.PostFormValue("action") != "update_mods" {
		h.moduleChartsGet(w, r)
		return
	}

	submitted := make(map[models.ModuleAccessKey]string)
	for field := range r.PostForm {
		if key, ok := models.ParseModuleAccessField(field); ok {
			submitted[key] = r.PostFormValue(field)
		}
	}

	outcome, err := h.services.ModuleAccessService.SaveChartAccess(r.Context(), h.requestContext(r, nil, models.PageTree), submitted)
	if err != nil {
		h.fail(w, r, "*Handler.moduleChartsPost", "error saving chart access", err)
		return
	}

	if outcome != models.OutcomeUpdated {
		h.moduleChartsGet(w, r)
		return
	}

	setFlashes(w, view.Flash{Status: flashSuccess, Message: app.MsgPreferencesSaved})
	http.Redirect(w, r, moduleChartsPage, http.StatusSeeOther)
}
