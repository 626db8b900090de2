// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// movieRepository is the PostgreSQL-backed implementation of
// [MovieRepository]. Reads join the "directors" table so returned movies
// carry their director.
type movieRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMovieRepository constructs a [MovieRepository] on db.
func NewMovieRepository(db *DB, logger *logger.Logger) MovieRepository {
	logger.Debug().Msg("creating movie repository")
	return &movieRepository{
		db:     db,
		logger: logger,
	}
}

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// CreateMovie inserts movie and returns the stored row. Director is not
// populated; DirectorID is.
//
// Error handling:
//   - unique violation on image_url → [ErrImageURLAlreadyExists].
//   - foreign key violation on director_id → [ErrDirectorNotFound].
//   - any other driver-level error → wrapped [ErrExecutingQuery].
func (r *movieRepository) CreateMovie(ctx context.Context, movie models.Movie) (models.Movie, error) {
	log := logger.FromContext(ctx)

	row := r.db.conn(ctx).QueryRowContext(ctx, createMovie,
		movie.Title,
		movie.PublishingYear,
		movie.PublishingCountry,
		movie.ImageURL,
		movie.Genre,
		movie.Rating,
		movie.UserID,
		movie.DirectorID,
	)

	var created models.Movie
	if err := row.Scan(movieScanTargets(&created)...); err != nil {
		log.Err(err).
			Str("func", "*movieRepository.CreateMovie").
			Int64("user_id", movie.UserID).
			Msg("error creating movie")
		if sentinel := classifyPgError(err); sentinel != nil {
			return models.Movie{}, sentinel
		}
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// FindMovieByID returns the movie with its director, or [ErrMovieNotFound].
func (r *movieRepository) FindMovieByID(ctx context.Context, movieID int64) (models.Movie, error) {
	log := logger.FromContext(ctx)

	movie, err := scanMovie(r.db.conn(ctx).QueryRowContext(ctx, findMovieByID, movieID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).
			Str("func", "*movieRepository.FindMovieByID").
			Int64("movie_id", movieID).
			Msg("error finding movie")
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return movie, nil
}

// ListMovies returns the page of userID's movies selected by query.
// An empty result is an empty, non-nil slice.
func (r *movieRepository) ListMovies(ctx context.Context, userID int64, query models.MoviesQuery) ([]models.Movie, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildListMoviesQuery(ctx, userID, query)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, sqlQuery, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*movieRepository.ListMovies").
			Int64("user_id", userID).
			Msg("failed to execute query for listing movies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	movies := make([]models.Movie, 0, 20)
	for rows.Next() {
		movie, scanErr := scanMovie(rows)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*movieRepository.ListMovies").
				Int64("user_id", userID).
				Msg("failed to scan movie row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "*movieRepository.ListMovies").
			Int64("user_id", userID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return movies, nil
}

// CountMovies counts userID's movies matching query's filters.
func (r *movieRepository) CountMovies(ctx context.Context, userID int64, query models.MoviesQuery) (int64, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildCountMoviesQuery(ctx, userID, query)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.conn(ctx).QueryRowContext(ctx, sqlQuery, args...).Scan(&count); err != nil {
		log.Err(err).
			Str("func", "*movieRepository.CountMovies").
			Int64("user_id", userID).
			Msg("failed to count movies")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// UpdateMovie applies the non-nil fields of update and returns the stored
// movie with its director.
func (r *movieRepository) UpdateMovie(ctx context.Context, movieID int64, update models.UpdateMovieRequest) (models.Movie, error) {
	log := logger.FromContext(ctx)

	sqlQuery, args, err := buildUpdateMovieQuery(ctx, movieID, update)
	if err != nil {
		return models.Movie{}, err
	}

	var updatedID int64
	if err := r.db.conn(ctx).QueryRowContext(ctx, sqlQuery, args...).Scan(&updatedID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Movie{}, ErrMovieNotFound
		}
		log.Err(err).
			Str("func", "*movieRepository.UpdateMovie").
			Int64("movie_id", movieID).
			Msg("error updating movie")
		if sentinel := classifyPgError(err); sentinel != nil {
			return models.Movie{}, sentinel
		}
		return models.Movie{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return r.FindMovieByID(ctx, updatedID)
}

// joinedDirector holds the nullable columns of a LEFT JOIN on directors.
type joinedDirector struct {
	id        sql.NullInt64
	fullName  sql.NullString
	createdAt sql.NullTime
	updatedAt sql.NullTime
}

func (d joinedDirector) toModel() *models.Director {
	if !d.id.Valid {
		return nil
	}

	return &models.Director{
		DirectorID: d.id.Int64,
		FullName:   d.fullName.String,
		CreatedAt:  d.createdAt.Time,
		UpdatedAt:  d.updatedAt.Time,
	}
}

// movieScanTargets returns destinations for the movie columns in the order
// used by createMovie and movieColumns.
func movieScanTargets(movie *models.Movie) []any {
	return []any{
		&movie.MovieID,
		&movie.Title,
		&movie.PublishingYear,
		&movie.PublishingCountry,
		&movie.ImageURL,
		&movie.Genre,
		&movie.Rating,
		&movie.UserID,
		&movie.DirectorID,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	}
}

// scanMovie reads one row laid out as movieColumns.
func scanMovie(row rowScanner) (models.Movie, error) {
	var movie models.Movie
	var director joinedDirector

	targets := append(movieScanTargets(&movie),
		&director.id,
		&director.fullName,
		&director.createdAt,
		&director.updatedAt,
	)
	if err := row.Scan(targets...); err != nil {
		return models.Movie{}, err
	}

	movie.Director = director.toModel()

	return movie, nil
}
