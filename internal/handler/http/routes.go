// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, h.withMetrics)

	// machine endpoints, uncompressed and without a session
	router.Method(http.MethodGet, "/metrics", h.metricsHandler())
	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(withGZip, h.withSession)

		r.Get("/", func(w http.ResponseWriter, req *http.Request) {
			http.Redirect(w, req, usersPage, http.StatusSeeOther)
		})
		r.Get("/login", h.loginPage)
		r.Post("/login", h.login)
		r.Get("/logout", h.logout)

		// block permissions depend on the block's tree or owner and are
		// checked by the service
		r.Get("/blocks/{blockID}/top-given-names", h.topGivenNamesBlock)
		r.Get("/blocks/{blockID}/edit", h.blockEdit)
		r.Post("/blocks/{blockID}/edit", h.blockEdit)

		r.Group(func(r chi.Router) {
			r.Use(h.requireAdmin)

			r.Get(usersPage, h.usersGet)
			r.Post(usersPage, h.usersPost)
			r.Get(moduleChartsPage, h.moduleChartsGet)
			r.Post(moduleChartsPage, h.moduleChartsPost)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
