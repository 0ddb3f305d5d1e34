// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
	"time"
)

// Defaults applied to unset values.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultRequestTimeout  = 30 * time.Second
	DefaultTokenIssuer     = "go-tree-admin"
	DefaultSessionDuration = 24 * time.Hour
	DefaultMailTimeout     = 10 * time.Second
	DefaultMailFrom        = "no-reply@localhost"
	DefaultBaseURL         = "http://localhost:8080/"
	DefaultCleanupMonths   = 6
)

var (
	defaultThemes    = []string{"clouds", "colors", "fab", "minimal", "webtrees", "xenea"}
	defaultLanguages = []string{"en-US", "en-GB", "de", "fr", "nl", "ru"}
)

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.SessionDuration == 0 {
		cfg.App.SessionDuration = DefaultSessionDuration
	}
	if len(cfg.App.Themes) == 0 {
		cfg.App.Themes = append([]string(nil), defaultThemes...)
	}
	if len(cfg.App.Languages) == 0 {
		cfg.App.Languages = append([]string(nil), defaultLanguages...)
	}
	if cfg.App.MailFrom == "" {
		cfg.App.MailFrom = DefaultMailFrom
	}
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = DefaultBaseURL
	}
	if cfg.Mail.Timeout == 0 {
		cfg.Mail.Timeout = DefaultMailTimeout
	}
	if cfg.Cleanup.Months == 0 {
		cfg.Cleanup.Months = DefaultCleanupMonths
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.HashKey == "" || cfg.App.TokenSignKey == "" {
		return fmt.Errorf("%w: hash key and token sign key are required", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Mail.RelayURL != "" &&
		!strings.HasPrefix(cfg.Mail.RelayURL, "http://") && !strings.HasPrefix(cfg.Mail.RelayURL, "https://") {
		return fmt.Errorf("%w: relay URL must be http(s)", ErrInvalidMailConfigs)
	}

	if cfg.Cleanup.Months < 1 || cfg.Cleanup.Months > 12 {
		return fmt.Errorf("%w: months must be between 1 and 12", ErrInvalidCleanupConfigs)
	}

	return nil
}
