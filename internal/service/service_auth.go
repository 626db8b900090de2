// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-movie-catalog/internal/config"
	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/store"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
	"github.com/MKhiriev/go-movie-catalog/internal/validators"
	"github.com/MKhiriev/go-movie-catalog/models"
)

// authService is the concrete implementation of AuthService.
// Registration is delegated to UserService; credential checks read the
// stored bcrypt hash directly from the UserRepository.
type authService struct {
	userService    UserService
	userRepository store.UserRepository
	validator      validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// When not empty, tokens with a different issuer are rejected.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService populated with token
// parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userService UserService, userRepository store.UserRepository, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userService:    userService,
		userRepository: userRepository,
		validator:      validator,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// SignUp registers a new user account. See [UserService.Create].
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	return a.userService.Create(ctx, req)
}

// SignIn authenticates an existing user.
//
// Returns the authenticated user without password or:
//   - a *validators.ValidationError if email or password is missing.
//   - ErrUserNotFound if no user has the email.
//   - ErrWrongPassword if the password does not match the stored hash.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, req); err != nil {
		log.Debug().Err(err).Msg("invalid sign-in data provided")
		return models.User{}, fmt.Errorf("invalid sign-in data: %w", err)
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	ok, err := utils.ComparePassword(req.Password, foundUser.Password)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is broken")
		return models.User{}, err
	}
	if !ok {
		log.Info().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser.Sanitize(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) matches
// ErrTokenIsExpiredOrInvalid and keeps the jwt library error in the chain.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
