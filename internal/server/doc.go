// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server wires and runs the web and health servers together with
// the background workers, and shuts all of them down on SIGTERM, SIGINT or
// SIGQUIT.
package server
