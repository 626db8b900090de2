// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a typed client for the movie catalog HTTP API.
//
// [CatalogAdapter] hides request building, bearer token handling and
// error decoding. Failed calls return errors wrapping the sentinels of
// errors.go, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrForbidden] for 403); the server's message is kept in the error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-movie-catalog/models"
)

// CatalogAdapter is a client of the movie catalog API.
type CatalogAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// SignUp registers a user and stores the issued token.
	SignUp(ctx context.Context, req models.SignUpRequest) (string, error)

	// SignIn authenticates a user and stores the issued token.
	SignIn(ctx context.Context, req models.SignInRequest) (string, error)

	Me(ctx context.Context) (models.User, error)
	GetUser(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)

	// ListMovies encodes query as GET /api/movies parameters. Unset fields
	// are omitted.
	ListMovies(ctx context.Context, query models.MoviesQuery) (models.MoviesPage, error)
	GetMovie(ctx context.Context, movieID int64) (models.Movie, error)
	CreateMovie(ctx context.Context, req models.CreateMovieRequest) (models.Movie, error)
	UpdateMovie(ctx context.Context, movieID int64, req models.UpdateMovieRequest) (models.Movie, error)

	// Health returns the reported status. A 503 answer yields both the
	// decoded status and an error wrapping [ErrServiceUnavailable].
	Health(ctx context.Context) (models.HealthStatus, error)
}
