// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// ── parseMoviesQuery ──

func TestParseMoviesQuery(t *testing.T) {
	values := url.Values{
		"limit":             {"10"},
		"offset":            {" 20 "},
		"publishingYear":    {"1999"},
		"rating":            {"[3, 7.5]"},
		"genre":             {"  drama "},
		"publishingCountry": {"USA"},
		"sortingBy":         {"rating"},
		"sortingDirection":  {"desc"},
	}

	query, err := parseMoviesQuery(values)
	require.NoError(t, err)

	assert.Equal(t, models.MoviesQuery{
		Limit:             ptr(10),
		Offset:            ptr(20),
		PublishingYear:    ptr(1999),
		Rating:            []float64{3, 7.5},
		Genre:             "drama",
		PublishingCountry: "USA",
		SortingBy:         models.SortingByRating,
		SortingDirection:  models.SortingDirectionDESC,
	}, query)
}

func TestParseMoviesQuery_Empty(t *testing.T) {
	query, err := parseMoviesQuery(url.Values{"limit": {""}})
	require.NoError(t, err)
	assert.Equal(t, models.MoviesQuery{}, query)
}

func TestParseMoviesQuery_Errors(t *testing.T) {
	tests := []struct {
		name        string
		values      url.Values
		wantField   string
		wantMessage string
	}{
		{
			name:        "limit not a number",
			values:      url.Values{"limit": {"ten"}},
			wantField:   "limit",
			wantMessage: "limit must be an integer.",
		},
		{
			name:        "offset fractional",
			values:      url.Values{"offset": {"1.5"}},
			wantField:   "offset",
			wantMessage: "offset must be an integer.",
		},
		{
			name:        "year not a number",
			values:      url.Values{"publishingYear": {"nineties"}},
			wantField:   "publishingYear",
			wantMessage: "publishingYear must be an integer.",
		},
		{
			name:      "rating not an array",
			values:    url.Values{"rating": {"5"}},
			wantField: "rating",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseMoviesQuery(tt.values)

			var validationErr *validators.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantField, validationErr.Field)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, validationErr.Message)
			} else {
				assert.Contains(t, validationErr.Message, "rating must be an array of two numbers")
			}
		})
	}
}

// ── validateMoviesQuery ──

func TestValidateMoviesQuery(t *testing.T) {
	tests := []struct {
		name        string
		rawQuery    string
		wantStatus  int
		wantMessage string
	}{
		{
			name:       "no params",
			wantStatus: http.StatusOK,
		},
		{
			name:       "full sorting",
			rawQuery:   "sortingBy=title&sortingDirection=asc",
			wantStatus: http.StatusOK,
		},
		{
			name:        "sortingBy alone",
			rawQuery:    "sortingBy=title",
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.SortingParamsMessage,
		},
		{
			name:        "sortingDirection alone",
			rawQuery:    "sortingDirection=DESC",
			wantStatus:  http.StatusBadRequest,
			wantMessage: validators.SortingParamsMessage,
		},
		{
			name:        "unknown sorting field",
			rawQuery:    "sortingBy=director&sortingDirection=ASC",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "sortingBy must be one of: publishingYear, rating, title.",
		},
		{
			name:        "negative limit",
			rawQuery:    "limit=-1",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "limit must be greater than or equal to 0.",
		},
		{
			name:        "rating with one bound",
			rawQuery:    "rating=" + url.QueryEscape("[5]"),
			wantStatus:  http.StatusBadRequest,
			wantMessage: "rating must contain exactly 2 values.",
		},
		{
			name:        "non numeric limit",
			rawQuery:    "limit=abc",
			wantStatus:  http.StatusBadRequest,
			wantMessage: "limit must be an integer.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil)

			var (
				called bool
				got    models.MoviesQuery
			)
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				got = moviesQueryFromRequest(r)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/movies?"+tt.rawQuery, nil)
			rec := httptest.NewRecorder()

			h.validateMoviesQuery(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.True(t, called)
				if tt.rawQuery != "" {
					assert.Equal(t, models.SortingDirectionASC, got.SortingDirection)
				}
				return
			}
			assert.False(t, called)
			assert.Equal(t, tt.wantMessage, decodeAPIError(t, rec).Message)
		})
	}
}

func TestMoviesQueryFromRequest_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	assert.Equal(t, models.MoviesQuery{}, moviesQueryFromRequest(req))
}
