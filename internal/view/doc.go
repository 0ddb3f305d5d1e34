// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package view renders the administration pages from embedded html/template
// files. It holds presentation only: every value a page shows is computed by
// the handler and passed in one of the page data types.
package view
