// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/utils"
	"github.com/MKhiriev/go-tree-admin/models"
)

const sendPath = "/send"

type httpMailer struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewMailer returns an HTTP relay mailer when cfg.RelayURL is set and a
// logging mailer otherwise.
func NewMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	if cfg.RelayURL == "" {
		logger.Info().Msg("no mail relay configured, notifications are only logged")
		return NewLogMailer(logger), nil
	}

	return NewHTTPMailer(cfg, logger)
}

// NewHTTPMailer constructs a [Mailer] posting notifications as JSON to the
// relay at cfg.RelayURL. The API key, if any, is sent as a bearer token.
func NewHTTPMailer(cfg config.Mail, logger *logger.Logger) (Mailer, error) {
	baseURL, err := normalizeRelayURL(cfg.RelayURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRelayURL, err)
	}

	return &httpMailer{
		client: utils.NewHTTPClient(baseURL, cfg.Timeout),
		apiKey: cfg.APIKey,
		logger: logger,
	}, nil
}

func normalizeRelayURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("scheme must be http or https")
	}
	if u.Host == "" {
		return "", fmt.Errorf("address must include a host")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Send implements [Mailer].
func (m *httpMailer) Send(ctx context.Context, n models.Notification) error {
	log := logger.FromContext(ctx)

	if n.ToEmail == "" {
		return ErrNoRecipient
	}

	req := m.client.R().SetContext(ctx).SetBody(n)
	if m.apiKey != "" {
		req.SetAuthToken(m.apiKey)
	}
	if traceID := utils.GetTraceIDFromContext(ctx); traceID != "" {
		req.SetHeader("X-Trace-ID", traceID)
	}

	resp, err := req.Post(sendPath)
	if err != nil {
		log.Err(err).Str("func", "httpMailer.Send").Str("to", n.ToEmail).Msg("mail relay request failed")
		return fmt.Errorf("%w: %w", ErrRelayRequest, err)
	}

	if err = mapRelayError(resp); err != nil {
		log.Err(err).Str("func", "httpMailer.Send").Str("to", n.ToEmail).Int("status", resp.StatusCode()).Msg("mail relay refused notification")
		return err
	}

	log.Info().Str("func", "httpMailer.Send").Str("to", n.ToEmail).Str("subject", n.Subject).Msg("notification handed to mail relay")
	return nil
}
