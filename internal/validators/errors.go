// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	// ErrUnsupportedType is returned for values no rule set is registered for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrValidation is matched by every [ValidationError].
	ErrValidation = errors.New("validation failed")
)

// ValidationError describes the first rule an input violated.
// Message is safe to show to API clients.
type ValidationError struct {
	// Field is the JSON name of the offending field.
	Field string
	// Tag is the violated rule (e.g. "required", "oneof").
	Tag string
	// Message is the human readable description.
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Unwrap makes every ValidationError match [ErrValidation].
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a [ValidationError] that is not tied to a
// struct tag, e.g. for malformed query parameters.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
