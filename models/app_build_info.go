// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "fmt"

// AppBuildInfo carries build metadata injected by linker flags.
// Empty values are reported as "N/A".
type AppBuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo], replacing missing values with "N/A".
func NewAppBuildInfo(version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func (a AppBuildInfo) String() string {
	return fmt.Sprintf("Build version: %s\nBuild date: %s\nBuild commit: %s", a.Version, a.Date, a.Commit)
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

// SiteSummary is shown in the control panel footer.
type SiteSummary struct {
	Version string `json:"version"`
	Users   int    `json:"users"`
	Trees   int    `json:"trees"`
}
