// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// getMe handles GET /api/users/me.
func (h *Handler) getMe(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	user, err := h.services.UserService.Get(r.Context(), userID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

// getUser handles GET /api/users/{ID}.
func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) error {
	if _, err := userIDFromRequest(r); err != nil {
		return err
	}

	id, err := idParam(r)
	if err != nil {
		return err
	}

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}

// updateUser handles PUT /api/users/{ID}. Users may only change their own
// profile.
func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	id, err := idParam(r)
	if err != nil {
		return err
	}
	if id != userID {
		return ErrForeignProfile
	}

	var req models.UpdateUserRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	user, err := h.services.UserService.Update(r.Context(), id, req)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, user, http.StatusOK)
	return err
}
