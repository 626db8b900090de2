// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/models"
)

type appInfoService struct {
	appVersion string
	buildInfo  models.AppBuildInfo

	healthChecker store.HealthChecker

	logger *logger.Logger
}

// NewAppInfoService builds an AppInfoService. The configured version takes
// precedence over the one embedded at build time.
func NewAppInfoService(buildInfo models.AppBuildInfo, healthChecker store.HealthChecker, cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := cfg.Version
	if version == "" {
		version = buildInfo.BuildVersion()
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion:    version,
		buildInfo:     buildInfo,
		healthChecker: healthChecker,
		logger:        logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// Health pings the database. On failure the returned status is still
// filled in and the error matches ErrStorageUnavailable.
func (s *appInfoService) Health(ctx context.Context) (models.HealthStatus, error) {
	status := models.HealthStatus{
		Status:      models.HealthStatusOK,
		Database:    models.HealthStatusOK,
		Version:     s.appVersion,
		BuildDate:   s.buildInfo.BuildDate(),
		BuildCommit: s.buildInfo.BuildCommit(),
	}

	if err := s.healthChecker.Ping(ctx); err != nil {
		logger.FromContext(ctx).Err(err).Msg("database ping failed")
		status.Status = models.HealthStatusUnavailable
		status.Database = models.HealthStatusUnavailable
		return status, fmt.Errorf("%w: %w", ErrStorageUnavailable, err)
	}

	return status, nil
}
