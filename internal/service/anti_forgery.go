// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"strconv"

	"github.com/MKhiriev/go-tree-admin/internal/utils"
	"github.com/MKhiriev/go-tree-admin/models"
)

const csrfPrefix = "csrf:"

// csrfToken derives the anti-forgery token of actor: the hex HMAC of
// "csrf:{userID}" under hashKey. Visitors get no token.
func csrfToken(hashKey string, actor *models.Actor) string {
	if actor == nil {
		return ""
	}
	return utils.HashString(csrfPrefix+strconv.FormatInt(actor.UserID, 10), hashKey)
}

// validCSRF reports whether rc carries the anti-forgery token of its actor.
func validCSRF(hashKey string, rc models.RequestContext) bool {
	if rc.Actor == nil || rc.Token == "" {
		return false
	}
	return utils.VerifyHashString(csrfPrefix+strconv.FormatInt(rc.Actor.UserID, 10), hashKey, rc.Token)
}
