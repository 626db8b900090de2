// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, password, first_name, last_name)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password, first_name, last_name, created_at, updated_at;`

	findUserByEmail = `SELECT user_id, email, password, first_name, last_name, created_at, updated_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password, first_name, last_name, created_at, updated_at
    FROM users
    WHERE user_id = $1;`

	createDirector = `INSERT INTO directors (full_name)
    VALUES ($1)
    ON CONFLICT (full_name) DO NOTHING
    RETURNING director_id, full_name, created_at, updated_at;`

	findDirectorByFullName = `SELECT director_id, full_name, created_at, updated_at
    FROM directors
    WHERE full_name = $1;`

	createMovie = `INSERT INTO movies (title, publishing_year, publishing_country, image_url, genre, rating, user_id, director_id)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
    RETURNING movie_id, title, publishing_year, publishing_country, image_url, genre, rating, user_id, director_id, created_at, updated_at;`

	findMovieByID = `SELECT m.movie_id, m.title, m.publishing_year, m.publishing_country, m.image_url, m.genre, m.rating,
        m.user_id, m.director_id, m.created_at, m.updated_at,
        d.director_id, d.full_name, d.created_at, d.updated_at
    FROM movies m
    LEFT JOIN directors d ON d.director_id = m.director_id
    WHERE m.movie_id = $1;`
)

const userReturning = "RETURNING user_id, email, password, first_name, last_name, created_at, updated_at"

// movieColumns is the select list shared by findMovieByID and the listing
// query; scanMovie expects exactly this order.
var movieColumns = []string{
	"m.movie_id", "m.title", "m.publishing_year", "m.publishing_country", "m.image_url", "m.genre", "m.rating",
	"m.user_id", "m.director_id", "m.created_at", "m.updated_at",
	"d.director_id", "d.full_name", "d.created_at", "d.updated_at",
}

// sortingColumns whitelists the columns a listing may be ordered by.
var sortingColumns = map[models.SortingBy]string{
	models.SortingByPublishingYear: "m.publishing_year",
	models.SortingByRating:         "m.rating",
	models.SortingByTitle:          "m.title",
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s as a literal substring.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// applyMovieFilters adds the owner scope and every filter present in query.
func applyMovieFilters(builder sq.SelectBuilder, userID int64, query models.MoviesQuery) sq.SelectBuilder {
	builder = builder.Where(sq.Eq{"m.user_id": userID})

	if query.Genre != "" {
		builder = builder.Where(sq.ILike{"m.genre": containsPattern(query.Genre)})
	}
	if query.PublishingCountry != "" {
		builder = builder.Where(sq.ILike{"m.publishing_country": containsPattern(query.PublishingCountry)})
	}
	if query.PublishingYear != nil {
		builder = builder.Where(sq.Eq{"m.publishing_year": *query.PublishingYear})
	}
	if len(query.Rating) == 2 {
		builder = builder.
			Where(sq.GtOrEq{"m.rating": query.Rating[0]}).
			Where(sq.LtOrEq{"m.rating": query.Rating[1]})
	}

	return builder
}

// buildListMoviesQuery builds the filtered, optionally sorted and paginated
// listing of a user's movies joined with their directors.
func buildListMoviesQuery(ctx context.Context, userID int64, query models.MoviesQuery) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := psql.
		Select(movieColumns...).
		From("movies m").
		LeftJoin("directors d ON d.director_id = m.director_id")
	builder = applyMovieFilters(builder, userID, query)

	if query.IsSorted() {
		column, ok := sortingColumns[query.SortingBy]
		if !ok {
			return "", nil, fmt.Errorf("%w: unsupported sorting column %q", ErrBuildingSQLQuery, query.SortingBy)
		}
		direction := "ASC"
		if query.SortingDirection == models.SortingDirectionDESC {
			direction = "DESC"
		}
		builder = builder.OrderBy(column+" "+direction, "m.movie_id ASC")
	}

	if query.Limit != nil {
		builder = builder.Limit(uint64(*query.Limit))
	}
	if query.Offset != nil {
		builder = builder.Offset(uint64(*query.Offset))
	}

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildListMoviesQuery").Int64("user_id", userID).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildCountMoviesQuery counts the movies matching the same filters as
// buildListMoviesQuery, ignoring limit, offset and sorting.
func buildCountMoviesQuery(ctx context.Context, userID int64, query models.MoviesQuery) (string, []any, error) {
	log := logger.FromContext(ctx)

	builder := applyMovieFilters(psql.Select("COUNT(*)").From("movies m"), userID, query)

	sqlQuery, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildCountMoviesQuery").Int64("user_id", userID).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildUpdateMovieQuery builds a partial UPDATE touching only the non-nil
// fields of update. The statement returns the movie id.
func buildUpdateMovieQuery(ctx context.Context, movieID int64, update models.UpdateMovieRequest) (string, []any, error) {
	log := logger.FromContext(ctx)

	set := make(map[string]any, 6)
	if update.Title != nil {
		set["title"] = *update.Title
	}
	if update.PublishingYear != nil {
		set["publishing_year"] = *update.PublishingYear
	}
	if update.PublishingCountry != nil {
		set["publishing_country"] = *update.PublishingCountry
	}
	if update.ImageURL != nil {
		set["image_url"] = *update.ImageURL
	}
	if update.Genre != nil {
		set["genre"] = *update.Genre
	}
	if update.Rating != nil {
		set["rating"] = *update.Rating
	}

	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}

	sqlQuery, args, err := psql.
		Update("movies").
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"movie_id": movieID}).
		Suffix("RETURNING movie_id").
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildUpdateMovieQuery").Int64("movie_id", movieID).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}

// buildUpdateUserQuery builds a partial UPDATE of the profile fields.
func buildUpdateUserQuery(ctx context.Context, userID int64, update models.UpdateUserRequest) (string, []any, error) {
	log := logger.FromContext(ctx)

	set := make(map[string]any, 2)
	if update.FirstName != nil {
		set["first_name"] = *update.FirstName
	}
	if update.LastName != nil {
		set["last_name"] = *update.LastName
	}

	if len(set) == 0 {
		return "", nil, ErrNothingToUpdate
	}

	sqlQuery, args, err := psql.
		Update("users").
		SetMap(set).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix(userReturning).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "buildUpdateUserQuery").Int64("user_id", userID).Msg("failed to build query")
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return sqlQuery, args, nil
}
