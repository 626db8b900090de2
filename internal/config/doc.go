// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the movie catalog server.
//
// Configuration is assembled from multiple sources; for each field the first
// source that sets it wins:
//  1. Environment variables, optionally seeded from a .env file
//  2. Command-line flags
//  3. JSON config file
//
// The main entry point is [GetStructuredConfig].
package config
