// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// SessionToken is a signed session carried in the session cookie.
// The "sub" claim holds the signed-in user's id.
type SessionToken struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact serialized token placed in the cookie.
	SignedString string `json:"-"`

	// UserID is the parsed "sub" claim.
	UserID int64 `json:"-"`
}

// SubjectUserID parses the "sub" claim as a user id.
func (t *SessionToken) SubjectUserID() (int64, error) {
	subject, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting subject from session: %w", err)
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("session subject is not a user id: %w", err)
	}

	return userID, nil
}

func (t *SessionToken) String() string {
	return t.SignedString
}
