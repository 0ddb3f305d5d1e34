// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-tree-admin/internal/service"
	"github.com/MKhiriev/go-tree-admin/internal/store"
)

var errorStatusMap = map[error]int{
	ErrInvalidID:     http.StatusBadRequest,
	ErrUnknownAction: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrWrongPassword:           http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrAccountNotApproved:      http.StatusForbidden,
	service.ErrForbidden:               http.StatusForbidden,
	service.ErrNotTopGivenNamesBlock:   http.StatusNotFound,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrTreeNotFound:          http.StatusNotFound,
	store.ErrBlockNotFound:         http.StatusNotFound,
	store.ErrUserNameAlreadyExists: http.StatusConflict,
	store.ErrEmailAlreadyExists:    http.StatusConflict,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
