// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrUserAlreadyExists = errors.New("user with this email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrWrongPassword     = errors.New("wrong password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrMovieNotFound           = errors.New("movie not found")
	ErrImageURLAlreadyExists   = errors.New("movie with this image url already exists")
	ErrInvalidMovieData        = errors.New("invalid movie data")
	ErrUnauthorizedMovieAccess = errors.New("movie belongs to a different user")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")
	ErrStorageUnavailable    = errors.New("storage is unavailable")
)
