// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator

	// passwordHashCost is the bcrypt cost of newly stored passwords.
	passwordHashCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService on top of userRepository.
func NewUserService(userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		validator:        validator,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

func (s *userService) GetByEmail(ctx context.Context, email string) (models.User, bool, error) {
	user, err := s.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, false, nil
		}
		return models.User{}, false, fmt.Errorf("user search by email failed: %w", err)
	}

	return user.Sanitize(), true, nil
}

// Get returns the user with the given id or ErrUserNotFound.
func (s *userService) Get(ctx context.Context, userID int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, translateUserError(err)
	}

	return user.Sanitize(), nil
}

// Create validates req, hashes the password and stores the user.
//
// Returns:
//   - a *validators.ValidationError if req is malformed.
//   - ErrUserAlreadyExists if the email is taken.
func (s *userService) Create(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Str("email", req.Email).Msg("invalid sign-up data provided")
		return models.User{}, fmt.Errorf("invalid sign-up data: %w", err)
	}

	_, found, err := s.GetByEmail(ctx, req.Email)
	if err != nil {
		return models.User{}, err
	}
	if found {
		return models.User{}, ErrUserAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(req.Password, s.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.Create").Msg("password hashing failed")
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return models.User{}, validators.NewValidationError("password", "password must be at most 72 bytes long.")
		}
		return models.User{}, err
	}

	created, err := s.userRepository.CreateUser(ctx, models.User{
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, translateUserError(err)
	}

	return created.Sanitize(), nil
}

// Update changes the profile names of an existing user. An empty request
// returns the user unchanged.
func (s *userService) Update(ctx context.Context, userID int64, req models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := s.Get(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	if err := s.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Int64("user_id", userID).Msg("invalid user update provided")
		return models.User{}, fmt.Errorf("invalid user update: %w", err)
	}

	if req.IsEmpty() {
		return user, nil
	}

	updated, err := s.userRepository.UpdateUser(ctx, userID, req)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user update ended with error")
		return models.User{}, translateUserError(err)
	}

	return updated.Sanitize(), nil
}

func translateUserError(err error) error {
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return fmt.Errorf("%w: %w", ErrUserAlreadyExists, err)
	default:
		return err
	}
}
