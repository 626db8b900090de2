// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/migrations"
)

// DB wraps the connection pool shared by all repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// querier is the subset of *sql.DB and *sql.Tx used by repositories.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// NewDB wraps an already opened *sql.DB.
func NewDB(db *sql.DB, log *logger.Logger) *DB {
	return &DB{DB: db, logger: log}
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// conn returns the transaction carried by ctx, or the pool when there is none.
func (db *DB) conn(ctx context.Context) querier {
	if tx, ok := txFromContext(ctx); ok {
		return tx
	}

	return db.DB
}
