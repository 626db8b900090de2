// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already registered.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrUserNotFound is returned when no user matches the lookup key.
	ErrUserNotFound = errors.New("user not found")

	// ErrDirectorAlreadyExists is returned when a director with the same full
	// name was inserted first, possibly by a concurrent request.
	ErrDirectorAlreadyExists = errors.New("director already exists")

	// ErrDirectorNotFound is returned when no director matches the full name
	// or a movie references a director that does not exist.
	ErrDirectorNotFound = errors.New("director not found")

	// ErrMovieNotFound is returned when no movie has the requested id.
	ErrMovieNotFound = errors.New("movie not found")

	// ErrImageURLAlreadyExists is returned when another movie already uses
	// the same image URL.
	ErrImageURLAlreadyExists = errors.New("image url already exists")

	// ErrInvalidRating is returned when the stored rating check fails.
	ErrInvalidRating = errors.New("rating is out of range")

	// ErrConstraintViolation is returned for integrity violations without a
	// dedicated sentinel.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrNothingToUpdate is returned when an update carries no fields.
	ErrNothingToUpdate = errors.New("nothing to update")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrRollingBackTransaction is returned when a failed unit of work could
	// not be rolled back.
	ErrRollingBackTransaction = errors.New("failed to roll back transaction")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
