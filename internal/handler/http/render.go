// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"net/http"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/utils"
	"github.com/MKhiriev/go-tree-admin/internal/view"
	"github.com/MKhiriev/go-tree-admin/models"
)

const csrfField = "csrf"

// page collects what every rendered page shows. Pending flash messages are
// consumed.
func (h *Handler) page(w http.ResponseWriter, r *http.Request, title string) view.Page {
	actor := utils.GetActorFromContext(r.Context())

	return view.Page{
		Title:   title,
		Actor:   actor,
		CSRF:    h.services.SessionService.CSRFToken(actor),
		Flashes: takeFlashes(w, r),
	}
}

// requestContext describes the current request to the service layer.
func (h *Handler) requestContext(r *http.Request, tree *models.Tree, pageType models.PageType) models.RequestContext {
	return models.RequestContext{
		Tree:     tree,
		Actor:    utils.GetActorFromContext(r.Context()),
		PageType: pageType,
		Token:    r.FormValue(csrfField),
	}
}

// render writes a full page. Nothing is sent until the template has
// executed.
func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	h.write(w, r, status, func(buf *bytes.Buffer) error {
		return h.views.Render(buf, page, data)
	})
}

func (h *Handler) renderFragment(w http.ResponseWriter, r *http.Request, page, name string, data any) {
	h.write(w, r, http.StatusOK, func(buf *bytes.Buffer) error {
		return h.views.RenderFragment(buf, page, name, data)
	})
}

func (h *Handler) write(w http.ResponseWriter, r *http.Request, status int, exec func(*bytes.Buffer) error) {
	var buf bytes.Buffer
	if err := exec(&buf); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.write").Msg("error rendering page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// fail logs err and answers with the status it maps to.
func (h *Handler) fail(w http.ResponseWriter, r *http.Request, funcName, msg string, err error) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Msg(msg)

	http.Error(w, http.StatusText(status), status)
}
