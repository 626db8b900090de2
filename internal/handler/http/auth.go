// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// signUp handles POST /api/signup.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var req models.SignUpRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	user, err := h.services.AuthService.SignUp(ctx, req)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Int64("user_id", user.UserID).Msg("user signed up")

	return h.writeToken(w, r, user)
}

// signIn handles POST /api/signin.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var req models.SignInRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	user, err := h.services.AuthService.SignIn(ctx, req)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.UserID).Msg("user signed in")

	return h.writeToken(w, r, user)
}

// writeToken issues a token for user and sends it both in the body and in
// the Authorization header.
func (h *Handler) writeToken(w http.ResponseWriter, r *http.Request, user models.User) error {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		return err
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, err = utils.WriteJSON(w, models.TokenResponse{AccessToken: token.SignedString}, http.StatusCreated)
	return err
}
