// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-movie-catalog/internal/logger"
	"github.com/MKhiriev/go-movie-catalog/internal/utils"
)

// health handles GET /api/health. An unreachable database is reported as
// 503 with the same body shape.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	status, err := h.services.AppInfoService.Health(r.Context())

	code := http.StatusOK
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("health check failed")
		code = statusFromError(err)
	}

	_, wErr := utils.WriteJSON(w, status, code)
	return wErr
}
