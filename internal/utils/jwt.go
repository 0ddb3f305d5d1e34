// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-tree-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 session token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user ID encoded as a string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required. Returns an error if any of them are empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateSessionToken("go-tree-admin", 42, time.Hour, "secret")
func GenerateSessionToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.SessionToken, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" {
		return models.SessionToken{}, errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred during singing session token: %w", err)
	}

	return models.SessionToken{
		Token:            token,
		RegisteredClaims: claims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ValidateAndParseSessionToken validates the given token string and extracts its claims.
//
// Validation includes:
//   - Signature verification using the provided sign key (HS256 only)
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim presence and check
//   - Subject (sub) claim presence and conversion to int64 UserID
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionToken, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	session := models.SessionToken{
		Token:            token,
		RegisteredClaims: *claims,
		SignedString:     tokenString,
	}

	if claims.Subject == "" {
		return models.SessionToken{}, errors.New("empty subject error")
	}

	session.UserID, err = session.SubjectUserID()
	if err != nil {
		return models.SessionToken{}, err
	}

	return session, nil
}
