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

type directorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewDirectorRepository constructs a [DirectorRepository] on db.
func NewDirectorRepository(db *DB, logger *logger.Logger) DirectorRepository {
	logger.Debug().Msg("creating director repository")
	return &directorRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDirector inserts a director. When the full name is already taken
// the insert is skipped and [ErrDirectorAlreadyExists] is returned, leaving
// any surrounding transaction usable.
func (r *directorRepository) CreateDirector(ctx context.Context, fullName string) (models.Director, error) {
	log := logger.FromContext(ctx)

	var director models.Director
	err := r.db.conn(ctx).QueryRowContext(ctx, createDirector, fullName).Scan(
		&director.DirectorID,
		&director.FullName,
		&director.CreatedAt,
		&director.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().Str("func", "*directorRepository.CreateDirector").Str("full_name", fullName).Msg("director already exists")
			return models.Director{}, ErrDirectorAlreadyExists
		}
		log.Err(err).Str("func", "*directorRepository.CreateDirector").Msg("error creating director")
		if sentinel := classifyPgError(err); sentinel != nil {
			return models.Director{}, sentinel
		}
		return models.Director{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return director, nil
}

// FindDirectorByFullName looks a director up by exact full name.
func (r *directorRepository) FindDirectorByFullName(ctx context.Context, fullName string) (models.Director, error) {
	log := logger.FromContext(ctx)

	var director models.Director
	err := r.db.conn(ctx).QueryRowContext(ctx, findDirectorByFullName, fullName).Scan(
		&director.DirectorID,
		&director.FullName,
		&director.CreatedAt,
		&director.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Director{}, ErrDirectorNotFound
		}
		log.Err(err).Str("func", "*directorRepository.FindDirectorByFullName").Msg("error finding director")
		return models.Director{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return director, nil
}
