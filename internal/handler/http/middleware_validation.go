// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

type moviesQueryCtxKey struct{}

// validateMoviesQuery parses the query string of GET /api/movies into a
// [models.MoviesQuery], validates it and stores it in the request context.
// The first failure is written as 400 and the chain stops.
func (h *Handler) validateMoviesQuery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, err := parseMoviesQuery(r.URL.Query())
		if err != nil {
			writeError(w, r, err)
			return
		}

		if err := h.validator.Validate(r.Context(), query); err != nil {
			writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), moviesQueryCtxKey{}, query)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// moviesQueryFromRequest returns the query stored by validateMoviesQuery,
// or the zero query.
func moviesQueryFromRequest(r *http.Request) models.MoviesQuery {
	query, _ := r.Context().Value(moviesQueryCtxKey{}).(models.MoviesQuery)
	return query
}

// parseMoviesQuery converts raw parameters. Empty values count as absent.
// rating is a JSON array, e.g. rating=[3,7].
func parseMoviesQuery(values url.Values) (models.MoviesQuery, error) {
	var (
		query models.MoviesQuery
		err   error
	)

	if query.Limit, err = intParam(values, "limit"); err != nil {
		return models.MoviesQuery{}, err
	}
	if query.Offset, err = intParam(values, "offset"); err != nil {
		return models.MoviesQuery{}, err
	}
	if query.PublishingYear, err = intParam(values, "publishingYear"); err != nil {
		return models.MoviesQuery{}, err
	}

	if raw := strings.TrimSpace(values.Get("rating")); raw != "" {
		if err := json.Unmarshal([]byte(raw), &query.Rating); err != nil {
			return models.MoviesQuery{}, validators.NewValidationError("rating",
				fmt.Sprintf("rating must be an array of two numbers: %s", err.Error()))
		}
	}

	query.Genre = strings.TrimSpace(values.Get("genre"))
	query.PublishingCountry = strings.TrimSpace(values.Get("publishingCountry"))
	query.SortingBy = models.SortingBy(strings.TrimSpace(values.Get("sortingBy")))
	query.SortingDirection = models.SortingDirection(strings.ToUpper(strings.TrimSpace(values.Get("sortingDirection"))))

	return query, nil
}

func intParam(values url.Values, name string) (*int, error) {
	raw := strings.TrimSpace(values.Get(name))
	if raw == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validators.NewValidationError(name, fmt.Sprintf("%s must be an integer.", name))
	}

	return &v, nil
}
