// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SortingDirection is the order applied to a sorted movie listing.
type SortingDirection string

const (
	SortingDirectionASC  SortingDirection = "ASC"
	SortingDirectionDESC SortingDirection = "DESC"
)

// SortingBy names the movie attribute a listing is sorted by.
type SortingBy string

const (
	SortingByPublishingYear SortingBy = "publishingYear"
	SortingByRating         SortingBy = "rating"
	SortingByTitle          SortingBy = "title"
)

// MoviesQuery represents the filter, sorting and pagination criteria of
// GET /api/movies. Every filter is optional; the result is always scoped
// to the authenticated user.
type MoviesQuery struct {
	Limit  *int `json:"limit" validate:"omitempty,min=0"`
	Offset *int `json:"offset" validate:"omitempty,min=0"`

	// Genre and PublishingCountry are matched as case-insensitive substrings.
	Genre             string `json:"genre"`
	PublishingCountry string `json:"publishingCountry"`

	// PublishingYear is matched exactly.
	PublishingYear *int `json:"publishingYear"`

	// Rating is an inclusive [low, high] range.
	Rating []float64 `json:"rating" validate:"omitempty,len=2,dive,min=0,max=10"`

	// SortingBy and SortingDirection must be provided together.
	SortingBy        SortingBy        `json:"sortingBy" validate:"required_with=SortingDirection,omitempty,oneof=publishingYear rating title"`
	SortingDirection SortingDirection `json:"sortingDirection" validate:"required_with=SortingBy,omitempty,oneof=ASC DESC"`
}

// IsSorted reports whether both sorting parameters are present.
func (q MoviesQuery) IsSorted() bool {
	return q.SortingBy != "" && q.SortingDirection != ""
}

// IsPaginated reports whether both limit and offset are present.
func (q MoviesQuery) IsPaginated() bool {
	return q.Limit != nil && q.Offset != nil
}
