// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "net/http"

// TokenResponse is returned by sign-up and sign-in.
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// PaginationInfo describes the position of a page within the full result set.
//
// Count is the number of matching movies regardless of limit and offset.
// CurrentPage and TotalPages are zero unless both limit and offset were given.
type PaginationInfo struct {
	Count       int64 `json:"count"`
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
}

// NewPaginationInfo derives page numbers from the total count and the
// requested window.
func NewPaginationInfo(count int64, query MoviesQuery) PaginationInfo {
	info := PaginationInfo{Count: count}
	if !query.IsPaginated() || *query.Limit <= 0 {
		return info
	}

	limit := int64(*query.Limit)
	offset := int64(*query.Offset)

	info.CurrentPage = offset/limit + 1
	info.TotalPages = (count + limit - 1) / limit

	return info
}

// MoviesPage is the response of GET /api/movies.
type MoviesPage struct {
	Movies         []Movie        `json:"movies"`
	PaginationInfo PaginationInfo `json:"paginationInfo"`
}

// APIError is the uniform error body written for every failed request.
type APIError struct {
	Message   string `json:"message"`
	ErrorCode int    `json:"errorCode"`
}

// NewAPIError builds an [APIError]. A zero code defaults to
// 500 Internal Server Error.
func NewAPIError(message string, code int) APIError {
	if code == 0 {
		code = http.StatusInternalServerError
	}

	return APIError{Message: message, ErrorCode: code}
}

// Error implements the error interface.
func (e APIError) Error() string {
	return e.Message
}
