// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// ContentTypeJSON is the media type of every JSON response.
const ContentTypeJSON = "application/json; charset=utf-8"

// WriteJSON encodes data and writes it with statusCode. Nothing is written
// to w until encoding succeeded; on failure the response is a plain 500.
//
// HTML in string values is left as is: the grid endpoint ships pre-escaped
// cell markup and the browser inserts it verbatim.
//
//	WriteJSON(w, models.UserListPage{Draw: 1}, http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(data); err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", ContentTypeJSON)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(statusCode)

	return w.Write(buf.Bytes())
}

// NoStore marks the response as never cacheable.
func NoStore(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
}
