// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, session token
// generation and validation, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-tree-admin/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

var (
	// UserIDCtxKey is the key used to store the signed-in user's identifier.
	//
	//	ctx := context.WithValue(ctx, utils.UserIDCtxKey, int64(42))
	UserIDCtxKey = contextKey("userID")

	// ActorCtxKey is the key the session middleware stores the resolved
	// *models.Actor under.
	ActorCtxKey = contextKey("actor")

	// TraceIDCtxKey is the key of the request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// GetUserIDFromContext retrieves the user identifier from the context.
//
// Returns the user ID of type int64 and an ok flag:
//   - ok == true:  value is found and has the correct int64 type
//   - ok == false: value is missing or has an unexpected type
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}

// WithActor stores the signed-in actor, and its id under [UserIDCtxKey].
func WithActor(ctx context.Context, actor *models.Actor) context.Context {
	ctx = context.WithValue(ctx, ActorCtxKey, actor)
	return context.WithValue(ctx, UserIDCtxKey, actor.UserID)
}

// GetActorFromContext returns the actor stored by [WithActor], or nil for
// visitors.
func GetActorFromContext(ctx context.Context) *models.Actor {
	actor, _ := ctx.Value(ActorCtxKey).(*models.Actor)
	return actor
}

// GetTraceIDFromContext returns the request trace id, or "" outside a request.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
