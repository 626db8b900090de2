// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-movie-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidJWTParams is returned by [GenerateJWTToken] when the user id,
	// duration or signing key is missing.
	ErrInvalidJWTParams = errors.New("invalid params for generating JWT Token")

	// ErrNoUserIDInToken is returned when a verified token carries no
	// positive userId claim.
	ErrNoUserIDInToken = errors.New("token does not contain a user id")
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT for userID.
//
// The payload is {userId, iat, exp} plus iss when issuer is not empty.
// exp is the current time plus tokenDuration.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("movie-catalog", 42, 10*time.Hour, "secret")
func GenerateJWTToken(issuer string, userID int64, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID <= 0 || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	now := time.Now()
	claims := &models.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken verifies tokenString and extracts the user id.
//
// Validation includes the HS256 signature, the exp claim and, when
// tokenIssuer is not empty, the iss claim. The returned error wraps the
// jwt library error so its message can be shown to the caller.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string) (models.Token, error) {
	options := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if tokenIssuer != "" {
		options = append(options, jwt.WithIssuer(tokenIssuer))
	}

	claims := new(models.Claims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, options...)
	if err != nil {
		return models.Token{}, err
	}

	if claims.UserID <= 0 {
		return models.Token{}, ErrNoUserIDInToken
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: claims.UserID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}

	return parts[1], nil
}
