// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/service"
	"github.com/MKhiriev/go-movie-catalog/models"
)

func TestWithTimeout(t *testing.T) {
	tests := []struct {
		name       string
		next       http.HandlerFunc
		wantStatus int
		wantBody   string
	}{
		{
			name: "silent handler past the deadline",
			next: func(_ http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
			},
			wantStatus: http.StatusGatewayTimeout,
			wantBody:   `{"message":"Request timed out.","errorCode":504}`,
		},
		{
			name: "fast handler untouched",
			next: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			},
			wantStatus: http.StatusNoContent,
		},
		{
			name: "late answer is kept",
			next: func(w http.ResponseWriter, r *http.Request) {
				<-r.Context().Done()
				w.WriteHeader(http.StatusTeapot)
			},
			wantStatus: http.StatusTeapot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(nil)
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)

			h.withTimeout(10*time.Millisecond)(tt.next).ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
				assert.JSONEq(t, tt.wantBody, rec.Body.String())
			}
		})
	}
}

func TestRoutes_RequestTimeout(t *testing.T) {
	movies := &mockMovieService{
		getFn: func(ctx context.Context, _, _ int64) (models.Movie, error) {
			<-ctx.Done()
			return models.Movie{}, ctx.Err()
		},
	}
	h := NewHandler(&service.Services{
		AuthService:  validTokenAuth(),
		MovieService: movies,
	}, config.Server{RequestTimeout: 10 * time.Millisecond}, logger.Nop())

	rec := serveAuthenticated(h.Init(), http.MethodGet, "/api/movies/1", "")

	require.Equal(t, http.StatusGatewayTimeout, rec.Code)
	apiErr := decodeAPIError(t, rec)
	assert.Equal(t, "Request timed out.", apiErr.Message)
	assert.Equal(t, http.StatusGatewayTimeout, apiErr.ErrorCode)
}
