// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken("test-issuer", 123, time.Hour, "secret-key")
	require.NoError(t, err)

	assert.NotEmpty(t, token.SignedString)
	assert.NotNil(t, token.Token)
	assert.Equal(t, int64(123), token.UserID)
	assert.Equal(t, "test-issuer", token.Issuer)
	assert.Equal(t, "123", token.Subject)
	assert.Equal(t, token.SignedString, token.String())
}

func TestGenerateSessionToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", time.Hour, "key"},
		{"zero duration", "iss", 0, "key"},
		{"empty key", "iss", time.Hour, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSessionToken(tt.issuer, 1, tt.duration, tt.key)
			assert.Error(t, err)
		})
	}
}

func TestValidateAndParseSessionToken_Success(t *testing.T) {
	token, err := GenerateSessionToken("test-issuer", 456, 5*time.Minute, "secret-key")
	require.NoError(t, err)

	parsed, err := ValidateAndParseSessionToken(token.SignedString, "secret-key", "test-issuer")
	require.NoError(t, err)
	assert.Equal(t, int64(456), parsed.UserID)
	assert.True(t, parsed.Valid)
}

func TestValidateAndParseSessionToken_Failures(t *testing.T) {
	valid, err := GenerateSessionToken("test-issuer", 1, time.Minute, "secret-key")
	require.NoError(t, err)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	})
	expiredString, err := expired.SignedString([]byte("secret-key"))
	require.NoError(t, err)

	noExpiry := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:  "test-issuer",
		Subject: "1",
	})
	noExpiryString, err := noExpiry.SignedString([]byte("secret-key"))
	require.NoError(t, err)

	badSubject := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    "test-issuer",
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	})
	badSubjectString, err := badSubject.SignedString([]byte("secret-key"))
	require.NoError(t, err)

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", "test-issuer"},
		{"wrong issuer", valid.SignedString, "secret-key", "someone-else"},
		{"expired", expiredString, "secret-key", "test-issuer"},
		{"no expiry", noExpiryString, "secret-key", "test-issuer"},
		{"non numeric subject", badSubjectString, "secret-key", "test-issuer"},
		{"malformed", "not.a.token", "secret-key", "test-issuer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateAndParseSessionToken(tt.token, tt.key, tt.issuer)
			assert.Error(t, err)
		})
	}
}
