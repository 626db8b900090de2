// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-movie-catalog/models"
)

// AuthService registers and authenticates users and manages access tokens.
type AuthService interface {
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)
	SignIn(ctx context.Context, req models.SignInRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// UserService manages user accounts. Returned users never carry a password.
type UserService interface {
	// GetByEmail reports found=false instead of an error when no user has
	// the email.
	GetByEmail(ctx context.Context, email string) (user models.User, found bool, err error)
	Get(ctx context.Context, userID int64) (models.User, error)
	Create(ctx context.Context, req models.SignUpRequest) (models.User, error)
	Update(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error)
}

// DirectorService resolves directors by full name. Calls made with a context
// returned by store.Transactor join that transaction.
type DirectorService interface {
	Create(ctx context.Context, fullName string) (models.Director, error)
	Find(ctx context.Context, fullName string) (director models.Director, found bool, err error)
	FindOrCreate(ctx context.Context, fullName string) (models.Director, error)
}

// MovieService manages the movie collection of a single owner.
type MovieService interface {
	Get(ctx context.Context, userID, movieID int64) (models.Movie, error)
	List(ctx context.Context, userID int64, query models.MoviesQuery) (models.MoviesPage, error)
	Create(ctx context.Context, userID int64, req models.CreateMovieRequest) (models.Movie, error)
	Update(ctx context.Context, userID, movieID int64, req models.UpdateMovieRequest) (models.Movie, error)
}

// AppInfoService reports the running build and the state of its dependencies.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	Health(ctx context.Context) (models.HealthStatus, error)
}
