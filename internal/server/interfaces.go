// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the application server.
//
// Implementations block in [RunServer] until shutdown is requested and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until SIGINT, SIGTERM
	// or SIGQUIT is received or the listener fails.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
