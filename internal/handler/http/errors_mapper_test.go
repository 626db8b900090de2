// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-movie-catalog/internal/service"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestResponseFromError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing token",
			err:         ErrEmptyAuthorizationHeader,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Access token must be provided",
		},
		{
			name:        "invalid token shows verification error",
			err:         fmt.Errorf("%w: %w", service.ErrTokenIsExpiredOrInvalid, errors.New("token has invalid claims: token is expired")),
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "token is expired or invalid: token has invalid claims: token is expired",
		},
		{
			name:        "no user id",
			err:         ErrNoUserIDInContext,
			wantStatus:  http.StatusUnauthorized,
			wantMessage: "Unauthorized",
		},
		{
			name:        "bad id",
			err:         ErrInvalidID,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "ID is required to be a number in params.",
		},
		{
			name:        "validation error carries its message",
			err:         fmt.Errorf("invalid movies query: %w", &validators.ValidationError{Field: "sortingBy", Message: validators.SortingParamsMessage}),
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.SortingParamsMessage,
		},
		{
			name:        "duplicate email",
			err:         fmt.Errorf("%w: %w", service.ErrUserAlreadyExists, store.ErrEmailAlreadyExists),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "User with this email already exists.",
		},
		{
			name:        "wrong password",
			err:         service.ErrWrongPassword,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Email or password are incorrect. Please try again.",
		},
		{
			name:        "unknown user",
			err:         fmt.Errorf("%w: %w", service.ErrUserNotFound, store.ErrUserNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "User not found.",
		},
		{
			name:        "foreign movie",
			err:         service.ErrUnauthorizedMovieAccess,
			wantStatus:  http.StatusForbidden,
			wantMessage: "You don't have access to this movie.",
		},
		{
			name:        "missing movie",
			err:         fmt.Errorf("%w: %w", service.ErrMovieNotFound, store.ErrMovieNotFound),
			wantStatus:  http.StatusNotFound,
			wantMessage: "Movie not found.",
		},
		{
			name:        "duplicate image url",
			err:         service.ErrImageURLAlreadyExists,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Movie with this imageURL already exists.",
		},
		{
			name:        "rollback failure stays internal",
			err:         fmt.Errorf("%w: boom (cause: %s)", store.ErrRollingBackTransaction, service.ErrImageURLAlreadyExists.Error()),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
		{
			name:        "deadline exceeded",
			err:         fmt.Errorf("%w: %w", store.ErrExecutingQuery, context.DeadlineExceeded),
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "Request timed out.",
		},
		{
			name:        "request timeout",
			err:         ErrRequestTimeout,
			wantStatus:  http.StatusGatewayTimeout,
			wantMessage: "Request timed out.",
		},
		{
			name:        "storage error does not leak",
			err:         fmt.Errorf("%w: password authentication failed", store.ErrExecutingQuery),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := responseFromError(tt.err)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
			assert.Equal(t, tt.wantStatus, statusFromError(tt.err))
		})
	}
}

func TestWriteError_UniformBody(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/movies/1", nil)

	writeError(rec, req, service.ErrMovieNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"message":"Movie not found.","errorCode":404}`, rec.Body.String())
}
