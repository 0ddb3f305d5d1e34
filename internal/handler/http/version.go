// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/utils"
)

type versionResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
	Users   int    `json:"users"`
	Trees   int    `json:"trees"`
}

// getServerVersion reports the build and the size of the site.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	build := h.services.AppInfoService.GetBuildInfo(r.Context())

	summary, err := h.services.AppInfoService.GetSiteSummary(r.Context())
	if err != nil {
		h.fail(w, r, "*Handler.getServerVersion", "error counting users and trees", err)
		return
	}

	if _, err = utils.WriteJSON(w, versionResponse{
		Version: build.Version,
		Date:    build.Date,
		Commit:  build.Commit,
		Users:   summary.Users,
		Trees:   summary.Trees,
	}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getServerVersion").Msg("error writing version")
	}
}
