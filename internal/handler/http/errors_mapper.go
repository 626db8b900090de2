// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/service"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

const internalErrorMessage = "There was an internal error."

// errorResponse binds a sentinel to the status and message sent to clients.
// An empty message means the error text itself is shown.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, "Access token must be provided"},
	{ErrEmptyToken, http.StatusUnauthorized, "Access token must be provided"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, ""},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, ""},
	{ErrNoUserIDInContext, http.StatusUnauthorized, "Unauthorized"},

	{ErrInvalidID, http.StatusBadRequest, "ID is required to be a number in params."},
	{ErrInvalidJSON, http.StatusBadRequest, ""},
	{validators.ErrValidation, http.StatusBadRequest, ""},

	{service.ErrUserAlreadyExists, http.StatusBadRequest, "User with this email already exists."},
	{service.ErrWrongPassword, http.StatusBadRequest, "Email or password are incorrect. Please try again."},
	{service.ErrUserNotFound, http.StatusNotFound, "User not found."},
	{ErrForeignProfile, http.StatusForbidden, "You can only change your own profile."},

	{service.ErrMovieNotFound, http.StatusNotFound, "Movie not found."},
	{service.ErrUnauthorizedMovieAccess, http.StatusForbidden, "You don't have access to this movie."},
	{service.ErrImageURLAlreadyExists, http.StatusBadRequest, "Movie with this imageURL already exists."},
	{service.ErrInvalidMovieData, http.StatusBadRequest, "Movie data is invalid."},

	{service.ErrStorageUnavailable, http.StatusServiceUnavailable, "Database is unavailable."},

	{ErrRequestTimeout, http.StatusGatewayTimeout, "Request timed out."},
	{context.DeadlineExceeded, http.StatusGatewayTimeout, "Request timed out."},
}

// statusFromError returns the HTTP status for err; unknown errors are 500.
func statusFromError(err error) int {
	status, _ := responseFromError(err)
	return status
}

// responseFromError resolves the status and client message of err.
// Validation failures carry their own message. Unknown errors never leak
// their text.
func responseFromError(err error) (int, string) {
	var validationErr *validators.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, validationErr.Message
	}

	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		if resp.message == "" {
			return resp.status, err.Error()
		}
		return resp.status, resp.message
	}

	return http.StatusInternalServerError, internalErrorMessage
}

// writeError renders err as an [models.APIError].
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status, message := responseFromError(err)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.NewAPIError(message, status), status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}
