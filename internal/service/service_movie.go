// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// movieService is the concrete implementation of MovieService.
//
// Every operation is scoped to the calling user: movies of other users are
// reported as ErrUnauthorizedMovieAccess, never returned.
type movieService struct {
	movieRepository store.MovieRepository
	directorService DirectorService
	transactor      store.Transactor
	validator       validators.Validator

	logger *logger.Logger
}

// NewMovieService constructs a MovieService.
func NewMovieService(
	movieRepository store.MovieRepository,
	directorService DirectorService,
	transactor store.Transactor,
	validator validators.Validator,
	logger *logger.Logger,
) MovieService {
	return &movieService{
		movieRepository: movieRepository,
		directorService: directorService,
		transactor:      transactor,
		validator:       validator,
		logger:          logger,
	}
}

// Get returns the movie with its director.
//
// Returns ErrMovieNotFound if it does not exist and
// ErrUnauthorizedMovieAccess if it belongs to another user.
func (s *movieService) Get(ctx context.Context, userID, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	movie, err := s.movieRepository.FindMovieByID(ctx, movieID)
	if err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("movie search by id failed")
		return models.Movie{}, translateMovieError(err)
	}

	if movie.UserID != userID {
		log.Warn().
			Int64("movie_id", movieID).
			Int64("owner_id", movie.UserID).
			Int64("user_id", userID).
			Msg("attempt to access a movie of a different user")
		return models.Movie{}, ErrUnauthorizedMovieAccess
	}

	return movie, nil
}

// List returns one page of the user's movies with pagination info computed
// over all matching movies.
func (s *movieService) List(ctx context.Context, userID int64, query models.MoviesQuery) (models.MoviesPage, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, query); err != nil {
		return models.MoviesPage{}, fmt.Errorf("invalid movies query: %w", err)
	}

	movies, err := s.movieRepository.ListMovies(ctx, userID, query)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing movies failed")
		return models.MoviesPage{}, err
	}

	count, err := s.movieRepository.CountMovies(ctx, userID, query)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("counting movies failed")
		return models.MoviesPage{}, err
	}

	return models.MoviesPage{
		Movies:         movies,
		PaginationInfo: models.NewPaginationInfo(count, query),
	}, nil
}

// Create stores a new movie owned by userID.
//
// When DirectorFullName is set, the director is looked up or created in the
// same transaction as the movie insert, so a failed insert leaves no new
// director behind. Errors from inside the transaction are returned as is.
func (s *movieService) Create(ctx context.Context, userID int64, req models.CreateMovieRequest) (models.Movie, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Int64("user_id", userID).Msg("invalid movie data provided")
		return models.Movie{}, fmt.Errorf("invalid movie data: %w", err)
	}

	movie := models.Movie{
		Title:             req.Title,
		PublishingYear:    *req.PublishingYear,
		PublishingCountry: req.PublishingCountry,
		ImageURL:          req.ImageURL,
		Genre:             req.Genre,
		Rating:            req.Rating,
		UserID:            userID,
	}

	var created models.Movie
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if req.DirectorFullName != nil {
			director, err := s.directorService.FindOrCreate(ctx, *req.DirectorFullName)
			if err != nil {
				return err
			}
			movie.DirectorID = &director.DirectorID
		}

		inserted, err := s.movieRepository.CreateMovie(ctx, movie)
		if err != nil {
			return err
		}

		created, err = s.movieRepository.FindMovieByID(ctx, inserted.MovieID)
		return err
	})
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("movie creation ended with error")
		return models.Movie{}, translateMovieError(err)
	}

	return created, nil
}

// Update applies the non-nil fields of req to a movie owned by userID.
// An empty request returns the movie unchanged.
func (s *movieService) Update(ctx context.Context, userID, movieID int64, req models.UpdateMovieRequest) (models.Movie, error) {
	log := logger.FromContext(ctx)

	movie, err := s.Get(ctx, userID, movieID)
	if err != nil {
		return models.Movie{}, err
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Int64("movie_id", movieID).Msg("invalid movie update provided")
		return models.Movie{}, fmt.Errorf("invalid movie update: %w", err)
	}

	if req.IsEmpty() {
		return movie, nil
	}

	updated, err := s.movieRepository.UpdateMovie(ctx, movieID, req)
	if err != nil {
		log.Err(err).Int64("movie_id", movieID).Msg("movie update ended with error")
		return models.Movie{}, translateMovieError(err)
	}

	return updated, nil
}

func translateMovieError(err error) error {
	switch {
	case errors.Is(err, store.ErrMovieNotFound):
		return fmt.Errorf("%w: %w", ErrMovieNotFound, err)
	case errors.Is(err, store.ErrImageURLAlreadyExists):
		return fmt.Errorf("%w: %w", ErrImageURLAlreadyExists, err)
	case errors.Is(err, store.ErrInvalidRating),
		errors.Is(err, store.ErrDirectorNotFound),
		errors.Is(err, store.ErrConstraintViolation):
		return fmt.Errorf("%w: %w", ErrInvalidMovieData, err)
	default:
		return err
	}
}
