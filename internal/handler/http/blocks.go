// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-tree-admin/internal/view"
	"github.com/MKhiriev/go-tree-admin/models"
)

// topGivenNamesBlock shows a block on its own page. With template=0 only the
// block body is returned, for embedding. Query parameters num and infoStyle
// override the stored settings for this request.
func (h *Handler) topGivenNamesBlock(w http.ResponseWriter, r *http.Request) {
	blockID, err := parseID(chi.URLParam(r, "blockID"), false)
	if err != nil {
		h.fail(w, r, "*Handler.topGivenNamesBlock", "bad block id", err)
		return
	}

	block, tree, err := h.services.TopGivenNamesService.ResolveBlock(r.Context(), blockID, r.URL.Query().Get("ged"))
	if err != nil {
		h.fail(w, r, "*Handler.topGivenNamesBlock", "error resolving block", err)
		return
	}

	overrides := make(map[string]string)
	for _, name := range []string{models.BlockSettingNum, models.BlockSettingInfoStyle} {
		if value := r.URL.Query().Get(name); value != "" {
			overrides[name] = value
		}
	}

	content, err := h.services.TopGivenNamesService.Block(r.Context(), h.requestContext(r, tree, block.PageType()), blockID, overrides)
	if err != nil {
		h.fail(w, r, "*Handler.topGivenNamesBlock", "error building block", err)
		return
	}

	data := view.BlockPage{Page: h.page(w, r, content.Title), Block: content}
	if r.URL.Query().Get("template") == "0" {
		h.renderFragment(w, r, view.PageBlock, view.BlockBody, data)
		return
	}
	h.render(w, r, http.StatusOK, view.PageBlock, data)
}

// blockEdit shows and saves a block's configuration form.
func (h *Handler) blockEdit(w http.ResponseWriter, r *http.Request) {
	blockID, err := parseID(chi.URLParam(r, "blockID"), false)
	if err != nil {
		h.fail(w, r, "*Handler.blockEdit", "bad block id", err)
		return
	}

	treeName := r.URL.Query().Get("ged")
	block, tree, err := h.services.TopGivenNamesService.ResolveBlock(r.Context(), blockID, treeName)
	if err != nil {
		h.fail(w, r, "*Handler.blockEdit", "error resolving block", err)
		return
	}

	form := models.BlockConfigForm{}
	if r.Method == http.MethodPost {
		form = models.BlockConfigForm{
			Save:      r.PostFormValue("save") == "1",
			Token:     r.PostFormValue(csrfField),
			Num:       r.PostFormValue(models.BlockSettingNum),
			InfoStyle: r.PostFormValue(models.BlockSettingInfoStyle),
		}
	}

	settings, outcome, err := h.services.TopGivenNamesService.Configure(r.Context(), h.requestContext(r, tree, block.PageType()), blockID, form)
	if err != nil {
		h.fail(w, r, "*Handler.blockEdit", "error configuring block", err)
		return
	}

	if outcome == models.OutcomeUpdated {
		target := "/blocks/" + strconv.FormatInt(blockID, 10) + "/top-given-names"
		if tree != nil {
			target += "?ged=" + url.QueryEscape(tree.Name)
		}
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}

	if tree != nil {
		treeName = tree.Name
	}
	h.render(w, r, http.StatusOK, view.PageBlockEdit, view.BlockEditPage{
		Page:     h.page(w, r, h.services.TopGivenNamesService.Descriptor().Title),
		BlockID:  blockID,
		TreeName: treeName,
		Settings: settings,
		Styles:   models.InfoStyles,
	})
}
