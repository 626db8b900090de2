// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-movie-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, update models.UpdateUserRequest) (models.User, error)
}

// DirectorRepository persists directors keyed by full name.
type DirectorRepository interface {
	CreateDirector(ctx context.Context, fullName string) (models.Director, error)
	FindDirectorByFullName(ctx context.Context, fullName string) (models.Director, error)
}

// MovieRepository persists movies. List and Count are always scoped to a
// single owner.
type MovieRepository interface {
	CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error)
	FindMovieByID(ctx context.Context, movieID int64) (models.Movie, error)
	ListMovies(ctx context.Context, userID int64, query models.MoviesQuery) ([]models.Movie, error)
	CountMovies(ctx context.Context, userID int64, query models.MoviesQuery) (int64, error)
	UpdateMovie(ctx context.Context, movieID int64, update models.UpdateMovieRequest) (models.Movie, error)
}

// Transactor runs a unit of work inside a single database transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
