// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-tree-admin/internal/app"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/service"
	"github.com/MKhiriev/go-tree-admin/internal/view"
)

const defaultLandingPage = "/admin/users"

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageLogin, view.LoginPage{
		Page:     h.page(w, r, "Sign in"),
		Redirect: r.URL.Query().Get("url"),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userName := strings.TrimSpace(r.PostFormValue("username"))
	password := r.PostFormValue("password")

	token, err := h.services.SessionService.SignIn(r.Context(), userName, password)
	if err != nil {
		status := statusFromError(err)
		message := app.MsgInvalidDataProvided
		switch {
		case errors.Is(err, service.ErrWrongPassword):
			message = app.MsgInvalidLoginPassword
		case errors.Is(err, service.ErrAccountNotApproved):
			message = app.MsgAccountNotApproved
		case status >= http.StatusInternalServerError:
			log.Err(err).Str("func", "*Handler.login").Msg("sign in failed")
			http.Error(w, http.StatusText(status), status)
			return
		}

		h.render(w, r, status, view.PageLogin, view.LoginPage{
			Page:     h.page(w, r, "Sign in"),
			UserName: userName,
			Redirect: r.URL.Query().Get("url"),
			Error:    message,
		})
		return
	}

	cookie := &http.Cookie{
		Name:     sessionCookie,
		Value:    token.SignedString,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	}
	if token.ExpiresAt != nil {
		cookie.Expires = token.ExpiresAt.Time
	}
	http.SetCookie(w, cookie)

	http.Redirect(w, r, landingPage(r.URL.Query().Get("url")), http.StatusSeeOther)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	clearCookie(w, sessionCookie)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// landingPage accepts local paths only.
func landingPage(target string) string {
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return defaultLandingPage
	}
	return target
}
