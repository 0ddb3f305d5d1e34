// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package view

import "github.com/MKhiriev/go-tree-admin/models"

// Flash is a one-shot message shown at the top of the next page.
type Flash struct {
	// Status is a contextual class: "success", "info" or "danger".
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Page is the data every page shares.
type Page struct {
	Title   string
	Actor   *models.Actor
	CSRF    string
	Flashes []Flash
}

// Option is one entry of a select box.
type Option struct {
	Value string
	Label string
}

type LoginPage struct {
	Page
	UserName string
	// Redirect is where to go after signing in.
	Redirect string
	Error    string
}

type UsersPage struct {
	Page
	PageSize int
	Filter   string
}

type UserEditPage struct {
	Page
	models.UserEditView

	Themes         []string
	Languages      []Option
	ContactMethods []Option
	Roles          []models.Role
	PathLengths    []int
}

type CleanupPage struct {
	Page
	Report models.CleanupReport
	Months []int
}

type ModuleChartsPage struct {
	Page
	Matrix models.ModuleAccessMatrix
	Levels []models.AccessLevel
}

type BlockPage struct {
	Page
	Block models.TopGivenNamesBlock
}

type BlockEditPage struct {
	Page
	BlockID  int64
	TreeName string
	Settings models.BlockSettings
	Styles   []models.InfoStyle
}
