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

// listMovies handles GET /api/movies. The query has already been parsed
// and validated by validateMoviesQuery.
func (h *Handler) listMovies(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	page, err := h.services.MovieService.List(r.Context(), userID, moviesQueryFromRequest(r))
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, page, http.StatusOK)
	return err
}

// getMovie handles GET /api/movies/{ID}.
func (h *Handler) getMovie(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	movieID, err := idParam(r)
	if err != nil {
		return err
	}

	movie, err := h.services.MovieService.Get(r.Context(), userID, movieID)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, movie, http.StatusOK)
	return err
}

// createMovie handles POST /api/movies.
func (h *Handler) createMovie(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	var req models.CreateMovieRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	movie, err := h.services.MovieService.Create(r.Context(), userID, req)
	if err != nil {
		return err
	}

	logger.FromRequest(r).Info().Int64("movie_id", movie.MovieID).Int64("user_id", userID).Msg("movie created")

	_, err = utils.WriteJSON(w, movie, http.StatusOK)
	return err
}

// updateMovie handles PUT /api/movies/{ID}.
func (h *Handler) updateMovie(w http.ResponseWriter, r *http.Request) error {
	userID, err := userIDFromRequest(r)
	if err != nil {
		return err
	}

	movieID, err := idParam(r)
	if err != nil {
		return err
	}

	var req models.UpdateMovieRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	movie, err := h.services.MovieService.Update(r.Context(), userID, movieID, req)
	if err != nil {
		return err
	}

	_, err = utils.WriteJSON(w, movie, http.StatusOK)
	return err
}
