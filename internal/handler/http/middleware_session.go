// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/utils"
)

const sessionCookie = "session"

// withSession resolves the signed-in actor from the session cookie. Requests
// without a usable session continue as visitors and lose the stale cookie.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(sessionCookie)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		actor, err := h.services.SessionService.ParseSession(r.Context(), cookie.Value)
		if err != nil {
			logger.FromRequest(r).Debug().Err(err).Str("func", "*Handler.withSession").Msg("dropping session cookie")
			clearCookie(w, sessionCookie)
			next.ServeHTTP(w, r)
			return
		}

		l := logger.FromRequest(r).With().Int64("user_id", actor.UserID).Logger()
		ctx := l.WithContext(utils.WithActor(r.Context(), actor))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin lets site administrators through. Visitors are sent to the
// sign-in page, other users get 403.
func (h *Handler) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := utils.GetActorFromContext(r.Context())
		if actor == nil {
			http.Redirect(w, r, "/login?url="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		if !actor.IsAdmin {
			logger.FromRequest(r).Warn().Str("func", "*Handler.requireAdmin").Int64("user_id", actor.UserID).Msg("admin page refused")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
