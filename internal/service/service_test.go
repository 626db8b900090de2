// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/mock"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var errStorage = errors.New("storage error")

func ptr[T any](v T) *T { return &v }

func testAppConfig() config.App {
	return config.App{
		TokenSignKey:     "test-sign-key",
		TokenIssuer:      "movie-catalog-test",
		TokenDuration:    config.DefaultTokenDuration,
		PasswordHashCost: bcrypt.MinCost,
		Version:          "1.0.0",
	}
}

func testValidator() validators.Validator {
	return validators.NewStructValidator()
}

// txCtxKey marks contexts handed out by the fake transactor.
type txCtxKey struct{}

func isTxContext(ctx context.Context) bool {
	v, _ := ctx.Value(txCtxKey{}).(bool)
	return v
}

// expectTransaction makes the transactor mock run fn with a marked context
// and return whatever fn returns.
func expectTransaction(tx *mock.MockTransactor) *gomock.Call {
	return tx.EXPECT().
		WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(context.WithValue(ctx, txCtxKey{}, true))
		})
}
