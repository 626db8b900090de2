// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Unique constraint names created by the initial migration.
const (
	constraintUsersEmail      = "users_email_key"
	constraintDirectorsName   = "directors_full_name_key"
	constraintMoviesImageURL  = "movies_image_url_key"
	constraintMoviesDirector  = "movies_director_id_fkey"
	constraintMoviesUser      = "movies_user_id_fkey"
	constraintMoviesRatingChk = "movies_rating_check"
)

// constraintErrors maps violated constraints to repository sentinels.
var constraintErrors = map[string]error{
	constraintUsersEmail:      ErrEmailAlreadyExists,
	constraintDirectorsName:   ErrDirectorAlreadyExists,
	constraintMoviesImageURL:  ErrImageURLAlreadyExists,
	constraintMoviesDirector:  ErrDirectorNotFound,
	constraintMoviesUser:      ErrUserNotFound,
	constraintMoviesRatingChk: ErrInvalidRating,
}

func postgresError(err error) *pgconn.PgError {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr
	}

	return nil
}

// classifyPgError translates an integrity constraint violation into the
// matching sentinel. Any other error yields nil.
func classifyPgError(err error) error {
	pgErr := postgresError(err)
	if pgErr == nil {
		return nil
	}

	switch pgErr.Code {
	case pgerrcode.UniqueViolation,
		pgerrcode.ForeignKeyViolation,
		pgerrcode.CheckViolation:
		if sentinel, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return sentinel
		}
		return ErrConstraintViolation
	}

	return nil
}
