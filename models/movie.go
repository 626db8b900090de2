// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Movie is a single entry of a user's collection.
//
// Ownership (UserID) is fixed at creation time and never transferred.
// Director is populated only by queries that join the directors table.
type Movie struct {
	// MovieID is the surrogate key assigned by the database.
	MovieID int64 `json:"id"`

	Title          string `json:"title"`
	PublishingYear int    `json:"publishingYear"`

	PublishingCountry *string  `json:"publishingCountry"`
	ImageURL          *string  `json:"imageURL"`
	Genre             *string  `json:"genre"`
	Rating            *float64 `json:"rating"`

	// UserID is the owner of the movie.
	UserID int64 `json:"userId"`

	// DirectorID references the director, nil when the movie has none.
	DirectorID *int64 `json:"directorId"`

	// Director is the joined director record, if any.
	Director *Director `json:"director,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Movie model.
func (m Movie) TableName() string {
	return "movies"
}

// CreateMovieRequest is the payload of POST /api/movies.
//
// DirectorFullName, when present, is resolved to an existing director
// or creates a new one inside the same transaction as the movie insert.
type CreateMovieRequest struct {
	Title             string   `json:"title" validate:"required"`
	PublishingYear    *int     `json:"publishingYear" validate:"required"`
	ImageURL          *string  `json:"imageURL" validate:"omitempty,min=1"`
	PublishingCountry *string  `json:"publishingCountry" validate:"omitempty,min=1"`
	Genre             *string  `json:"genre" validate:"omitempty,min=1"`
	Rating            *float64 `json:"rating" validate:"omitempty,min=0,max=10"`
	DirectorFullName  *string  `json:"directorFullName" validate:"omitempty,min=1"`
}

// UpdateMovieRequest carries a partial movie update. Ownership and director
// are not updatable; nil fields are left untouched.
type UpdateMovieRequest struct {
	Title             *string  `json:"title" validate:"omitempty,min=1"`
	PublishingYear    *int     `json:"publishingYear"`
	ImageURL          *string  `json:"imageURL" validate:"omitempty,min=1"`
	PublishingCountry *string  `json:"publishingCountry" validate:"omitempty,min=1"`
	Genre             *string  `json:"genre" validate:"omitempty,min=1"`
	Rating            *float64 `json:"rating" validate:"omitempty,min=0,max=10"`
}

// IsEmpty reports whether the update changes nothing.
func (r UpdateMovieRequest) IsEmpty() bool {
	return r.Title == nil &&
		r.PublishingYear == nil &&
		r.ImageURL == nil &&
		r.PublishingCountry == nil &&
		r.Genre == nil &&
		r.Rating == nil
}
