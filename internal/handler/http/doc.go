// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the web transport of the administration pages.
//
// It wires routes and middleware on a chi router, turns form posts into
// service calls and renders the results with the view package. Request
// tracing, access logging, metrics, response compression and session
// resolution are handled here before requests reach the service layer.
package http
