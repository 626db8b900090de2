// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/service"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock services
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	signUpFn      func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	signInFn      func(ctx context.Context, req models.SignInRequest) (models.User, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return m.signUpFn(ctx, req)
}

func (m *mockAuthService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	return m.signInFn(ctx, req)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn == nil {
		return models.Token{SignedString: "signed.jwt.token", UserID: user.UserID}, nil
	}
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

type mockUserService struct {
	getByEmailFn func(ctx context.Context, email string) (models.User, bool, error)
	getFn        func(ctx context.Context, userID int64) (models.User, error)
	createFn     func(ctx context.Context, req models.SignUpRequest) (models.User, error)
	updateFn     func(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
}

func (m *mockUserService) GetByEmail(ctx context.Context, email string) (models.User, bool, error) {
	return m.getByEmailFn(ctx, email)
}

func (m *mockUserService) Get(ctx context.Context, userID int64) (models.User, error) {
	return m.getFn(ctx, userID)
}

func (m *mockUserService) Create(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return m.createFn(ctx, req)
}

func (m *mockUserService) Update(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	return m.updateFn(ctx, userID, req)
}

type mockMovieService struct {
	getFn    func(ctx context.Context, userID, movieID int64) (models.Movie, error)
	listFn   func(ctx context.Context, userID int64, query models.MoviesQuery) (models.MoviesPage, error)
	createFn func(ctx context.Context, userID int64, req models.CreateMovieRequest) (models.Movie, error)
	updateFn func(ctx context.Context, userID, movieID int64, req models.UpdateMovieRequest) (models.Movie, error)
}

func (m *mockMovieService) Get(ctx context.Context, userID, movieID int64) (models.Movie, error) {
	return m.getFn(ctx, userID, movieID)
}

func (m *mockMovieService) List(ctx context.Context, userID int64, query models.MoviesQuery) (models.MoviesPage, error) {
	return m.listFn(ctx, userID, query)
}

func (m *mockMovieService) Create(ctx context.Context, userID int64, req models.CreateMovieRequest) (models.Movie, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockMovieService) Update(ctx context.Context, userID, movieID int64, req models.UpdateMovieRequest) (models.Movie, error) {
	return m.updateFn(ctx, userID, movieID, req)
}

type mockAppInfoService struct {
	version  string
	healthFn func(ctx context.Context) (models.HealthStatus, error)
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

func (m *mockAppInfoService) Health(ctx context.Context) (models.HealthStatus, error) {
	if m.healthFn == nil {
		return models.HealthStatus{Status: models.HealthStatusOK, Database: models.HealthStatusOK, Version: m.version}, nil
	}
	return m.healthFn(ctx)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

const testUserID int64 = 7

func ptr[T any](v T) *T { return &v }

func newTestHandler(services *service.Services) *Handler {
	if services == nil {
		services = &service.Services{}
	}
	return NewHandler(services, config.Server{}, logger.Nop())
}

// authenticated returns ctx as the auth middleware leaves it.
func authenticated(ctx context.Context) context.Context {
	return utils.WithUserID(ctx, testUserID)
}

// validTokenAuth accepts the token "valid" for testUserID only.
func validTokenAuth() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			if tokenString != "valid" {
				return models.Token{}, service.ErrTokenIsExpiredOrInvalid
			}
			return models.Token{UserID: testUserID}, nil
		},
	}
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) models.APIError {
	t.Helper()
	var apiErr models.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
