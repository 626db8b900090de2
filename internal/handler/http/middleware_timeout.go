// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// withTimeout bounds the request context by timeout. A handler that gives up
// on the deadline without answering gets a 504 with the JSON error body.
func (h *Handler) withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			tw := &responseWriter{ResponseWriter: w}
			r = r.WithContext(ctx)
			next.ServeHTTP(tw, r)

			if !tw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
				writeError(tw, r, ErrRequestTimeout)
			}
		})
	}
}
