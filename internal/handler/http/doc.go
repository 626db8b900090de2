// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the movie catalog.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Request tracing, access logging, authentication and validation of the
// movie listing query are handled in this package before requests are
// delegated to the service layer. Every failure is rendered by one place as
// {"message", "errorCode"}.
package http
