// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/service"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// requestTimeout bounds the context of every request; zero disables it.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		validator:      validators.NewStructValidator(),
		requestTimeout: cfg.RequestTimeout,
		logger:         logger,
	}
}

// handlerFunc is a route handler that reports failures instead of writing
// them itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to [http.HandlerFunc]; a returned error is written by
// [writeError].
func (h *Handler) handle(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			writeError(w, r, err)
		}
	}
}

// userIDFromRequest returns the id stored by the auth middleware.
func userIDFromRequest(r *http.Request) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		return 0, ErrNoUserIDInContext
	}

	return userID, nil
}

// idParam parses the positive integer path parameter {ID}.
func idParam(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "ID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}
