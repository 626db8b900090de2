// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is not of the form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is an empty string.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request errors raised by handlers before the service layer is reached.
var (
	// ErrNoUserIDInContext means a protected handler ran without an
	// authenticated user id in its context.
	ErrNoUserIDInContext = errors.New("no authenticated user id in request context")

	ErrInvalidID   = errors.New("invalid id in request path")
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrForeignProfile is returned when a user tries to change another
	// user's profile.
	ErrForeignProfile = errors.New("profile belongs to a different user")

	// ErrRequestTimeout is reported when a request outlives the configured
	// request timeout before anything was written.
	ErrRequestTimeout = errors.New("request timed out")
)
