// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-tree-admin/internal/view"
)

const flashCookie = "flash"

// Flash message statuses, used as contextual classes by the layout.
const (
	flashSuccess = "success"
	flashInfo    = "info"
	flashDanger  = "danger"
)

// setFlashes stores messages for the page shown after the next redirect.
func setFlashes(w http.ResponseWriter, flashes ...view.Flash) {
	if len(flashes) == 0 {
		return
	}

	raw, err := json.Marshal(flashes)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// takeFlashes returns the pending messages and clears them.
func takeFlashes(w http.ResponseWriter, r *http.Request) []view.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	clearCookie(w, flashCookie)

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	var flashes []view.Flash
	if err = json.Unmarshal(raw, &flashes); err != nil {
		return nil
	}
	return flashes
}

func clearCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
