// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

type Services struct {
	AuthService     AuthService
	UserService     UserService
	DirectorService DirectorService
	MovieService    MovieService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	validator := validators.NewStructValidator()

	appInfoService, err := NewAppInfoService(buildInfo, storages.HealthChecker, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	userService := NewUserService(storages.UserRepository, validator, cfg.App, logger)
	directorService := NewDirectorService(storages.DirectorRepository, validator, logger)

	return &Services{
		AuthService:     NewAuthService(userService, storages.UserRepository, validator, cfg.App, logger),
		UserService:     userService,
		DirectorService: directorService,
		MovieService:    NewMovieService(storages.MovieRepository, directorService, storages.Transactor, validator, logger),
		AppInfoService:  appInfoService,
	}, nil
}
