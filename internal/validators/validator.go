// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-movie-catalog/models"
)

// SortingParamsMessage is reported when only one of sortingBy and
// sortingDirection is given.
const SortingParamsMessage = "Both sorting params must be provided."

// maxBytesTag limits the length of a string field in bytes, not runes.
const maxBytesTag = "maxbytes"

var sortingFields = map[string]bool{
	"sortingBy":        true,
	"sortingDirection": true,
}

// StructValidator validates the request models of the catalog using their
// `validate` tags. It is safe for concurrent use.
type StructValidator struct {
	validate *validator.Validate
}

// NewStructValidator returns a [Validator] that reports fields by their JSON
// names.
func NewStructValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	_ = v.RegisterValidation(maxBytesTag, validateMaxBytes)

	return &StructValidator{validate: v}
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// Validate checks obj against its rules. When fields are given (Go struct
// field names), only those fields are checked. The first violation is
// returned as a *[ValidationError].
func (v *StructValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.SignUpRequest, *models.SignUpRequest,
		models.SignInRequest, *models.SignInRequest,
		models.UpdateUserRequest, *models.UpdateUserRequest,
		models.CreateMovieRequest, *models.CreateMovieRequest,
		models.UpdateMovieRequest, *models.UpdateMovieRequest,
		models.MoviesQuery, *models.MoviesQuery,
		models.Director, *models.Director:
		return v.validateStruct(ctx, obj, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *StructValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) && len(validationErrors) > 0 {
		return toValidationError(validationErrors[0])
	}

	return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
}

func toValidationError(fe validator.FieldError) *ValidationError {
	field := fe.Field()

	return &ValidationError{
		Field:   field,
		Tag:     fe.Tag(),
		Message: messageFor(fe, field),
	}
}

func messageFor(fe validator.FieldError, field string) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", field)
	case "required_with":
		if sortingFields[field] {
			return SortingParamsMessage
		}
		return fmt.Sprintf("%s is required when %s is present.", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email.", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "len":
		return fmt.Sprintf("%s must contain exactly %s values.", field, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long.", field, fe.Param())
		}
		return fmt.Sprintf("%s must be greater than or equal to %s.", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long.", field, fe.Param())
		}
		return fmt.Sprintf("%s must be less than or equal to %s.", field, fe.Param())
	case maxBytesTag:
		return fmt.Sprintf("%s must be at most %s bytes long.", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid.", field)
	}
}
