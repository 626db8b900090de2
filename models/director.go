// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Director is a movie director identified by a unique full name.
// Directors are created lazily the first time a movie references them.
type Director struct {
	DirectorID int64     `json:"id"`
	FullName   string    `json:"fullName" validate:"required"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Director model.
func (d Director) TableName() string {
	return "directors"
}
