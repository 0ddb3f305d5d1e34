// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle of the process's transports.
type Server interface {
	// RunServer serves until a stop signal arrives, then shuts down.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
