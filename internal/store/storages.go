// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "github.com/MKhiriev/go-movie-catalog/internal/logger"

// Storages groups every repository built on top of one [DB].
type Storages struct {
	UserRepository     UserRepository
	DirectorRepository DirectorRepository
	MovieRepository    MovieRepository
	Transactor         Transactor
	HealthChecker      HealthChecker
}

// NewStorages builds all repositories sharing db.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		DirectorRepository: NewDirectorRepository(db, logger),
		MovieRepository:    NewMovieRepository(db, logger),
		Transactor:         NewTransactor(db),
		HealthChecker:      db,
	}
}
