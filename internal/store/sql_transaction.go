// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
)

type txCtxKey struct{}

func txFromContext(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx)
	return tx, ok && tx != nil
}

type transactor struct {
	db *DB
}

// NewTransactor returns a [Transactor] running units of work on db.
func NewTransactor(db *DB) Transactor {
	return &transactor{db: db}
}

// WithinTransaction runs fn with a context carrying a new transaction.
// Repositories called with that context use the transaction.
//
// When fn fails the transaction is rolled back and fn's error is returned
// unchanged. If the rollback itself fails, [ErrRollingBackTransaction] is
// returned instead. A nested call joins the outer transaction.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := txFromContext(ctx); ok {
		return fn(ctx)
	}

	log := logger.FromContext(ctx)

	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "transactor.WithinTransaction").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if fnErr := fn(context.WithValue(ctx, txCtxKey{}, tx)); fnErr != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).
				Str("func", "transactor.WithinTransaction").
				AnErr("cause", fnErr).
				Msg("failed to roll back transaction")
			return fmt.Errorf("%w: %w (cause: %s)", ErrRollingBackTransaction, rbErr, fnErr.Error())
		}

		log.Debug().Str("func", "transactor.WithinTransaction").Msg("transaction rolled back")
		return fnErr
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "transactor.WithinTransaction").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}
