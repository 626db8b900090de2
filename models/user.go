// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account that owns a movie collection.
// Password holds the bcrypt hash and must be blanked (see [User.Sanitize])
// before the value leaves the service layer.
type User struct {
	// UserID is the surrogate key assigned by the database.
	UserID int64 `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Password is the bcrypt hash of the user's password.
	// It is omitted from JSON once sanitized.
	Password string `json:"password,omitempty"`

	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Sanitize returns a copy of the user with the password hash removed.
func (u User) Sanitize() User {
	u.Password = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// SignUpRequest is the payload of POST /api/signup.
type SignUpRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,maxbytes=72"`
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
}

// SignInRequest is the payload of POST /api/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest carries the profile fields a user may change.
// Nil fields are left untouched.
type UpdateUserRequest struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
}

// IsEmpty reports whether the request changes nothing.
func (r UpdateUserRequest) IsEmpty() bool {
	return r.FirstName == nil && r.LastName == nil
}
