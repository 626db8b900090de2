// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides helpers shared by the transport and service layers:
// typed context keys, JWT issuing and verification, password hashing,
// JSON request/response helpers and trace id generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that values stored here
// never collide with string keys set by other packages.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey is the key under which the authentication middleware stores
// the id of the authenticated user.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying the authenticated user id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext retrieves the authenticated user id from ctx.
//
// ok is false when no id was stored, the stored value is not an int64,
// or the id is not positive.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	if !ok || userID <= 0 {
		return 0, false
	}

	return userID, true
}
