// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// A path that exists but does not serve the requested method answers 404
// instead of chi's 405.
//
// Only literal route patterns are looked up; a request whose path matches a
// parameterised pattern such as /blocks/{blockID}/edit always gets 404 here.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var found chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				found = route
				break
			}
		}

		if _, ok := found.Handlers[r.Method]; !ok {
			http.NotFound(w, r)
			return
		}

		router.ServeHTTP(w, r)
	}
}
