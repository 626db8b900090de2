// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Health statuses reported by GET /api/health.
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)

// HealthStatus is the response of GET /api/health.
type HealthStatus struct {
	Status      string `json:"status"`
	Database    string `json:"database"`
	Version     string `json:"version"`
	BuildDate   string `json:"buildDate,omitempty"`
	BuildCommit string `json:"buildCommit,omitempty"`
}
