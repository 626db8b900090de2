// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

type directorService struct {
	directorRepository store.DirectorRepository
	validator          validators.Validator

	logger *logger.Logger
}

// NewDirectorService constructs a DirectorService on directorRepository.
func NewDirectorService(directorRepository store.DirectorRepository, validator validators.Validator, logger *logger.Logger) DirectorService {
	return &directorService{
		directorRepository: directorRepository,
		validator:          validator,
		logger:             logger,
	}
}

// Create stores a director named fullName. If the name was taken in the
// meantime the existing director is returned.
func (s *directorService) Create(ctx context.Context, fullName string) (models.Director, error) {
	log := logger.FromContext(ctx)

	director := models.Director{FullName: strings.TrimSpace(fullName)}
	if err := s.validator.Validate(ctx, director); err != nil {
		return models.Director{}, fmt.Errorf("invalid director: %w", err)
	}

	created, err := s.directorRepository.CreateDirector(ctx, director.FullName)
	if err == nil {
		log.Debug().Int64("director_id", created.DirectorID).Msg("director created")
		return created, nil
	}
	if !errors.Is(err, store.ErrDirectorAlreadyExists) {
		log.Err(err).Str("full_name", director.FullName).Msg("director creation ended with error")
		return models.Director{}, err
	}

	existing, err := s.directorRepository.FindDirectorByFullName(ctx, director.FullName)
	if err != nil {
		log.Err(err).Str("full_name", director.FullName).Msg("existing director lookup failed")
		return models.Director{}, err
	}

	return existing, nil
}

func (s *directorService) Find(ctx context.Context, fullName string) (models.Director, bool, error) {
	director, err := s.directorRepository.FindDirectorByFullName(ctx, strings.TrimSpace(fullName))
	if err != nil {
		if errors.Is(err, store.ErrDirectorNotFound) {
			return models.Director{}, false, nil
		}
		return models.Director{}, false, err
	}

	return director, true, nil
}

// FindOrCreate returns the director named fullName, creating it on first use.
func (s *directorService) FindOrCreate(ctx context.Context, fullName string) (models.Director, error) {
	director, found, err := s.Find(ctx, fullName)
	if err != nil {
		return models.Director{}, err
	}
	if found {
		return director, nil
	}

	return s.Create(ctx, fullName)
}
