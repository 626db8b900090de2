// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(h.withTimeout(h.requestTimeout))
	}

	router.NotFound(jsonStatus(http.StatusNotFound))
	router.MethodNotAllowed(jsonStatus(http.StatusMethodNotAllowed))

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/health", h.handle(h.health))
		r.Post("/signup", h.handle(h.signUp))
		r.Post("/signin", h.handle(h.signIn))

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Get("/users/me", h.handle(h.getMe))
			r.Get("/users/{ID}", h.handle(h.getUser))
			r.Put("/users/{ID}", h.handle(h.updateUser))

			r.With(h.validateMoviesQuery).Get("/movies", h.handle(h.listMovies))
			r.Post("/movies", h.handle(h.createMovie))
			r.Get("/movies/{ID}", h.handle(h.getMovie))
			r.Put("/movies/{ID}", h.handle(h.updateMovie))
		})
	})

	return router
}

// jsonStatus answers with an [models.APIError] carrying the status text.
func jsonStatus(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		_, _ = utils.WriteJSON(w, models.NewAPIError(http.StatusText(status), status), status)
	}
}
