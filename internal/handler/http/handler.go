// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/service"
	"github.com/MKhiriev/go-tree-admin/internal/view"
)

type Handler struct {
	services *service.Services
	views    *view.Views

	metrics  *httpMetrics
	gatherer prometheus.Gatherer

	themes    []string
	languages []view.Option
	// endonyms maps a language tag to its name in that language.
	endonyms map[string]string

	now    func() time.Time
	logger *logger.Logger
}

// NewHandler builds the web handler. HTTP metrics are registered on registry
// and served from it.
func NewHandler(services *service.Services, cfg config.App, registry *prometheus.Registry, logger *logger.Logger) (*Handler, error) {
	views, err := view.New()
	if err != nil {
		return nil, fmt.Errorf("error loading views: %w", err)
	}

	h := &Handler{
		services: services,
		views:    views,
		metrics:  newHTTPMetrics(registry),
		gatherer: registry,
		themes:   cfg.Themes,
		endonyms: make(map[string]string, len(cfg.Languages)),
		now:      time.Now,
		logger:   logger,
	}

	for _, code := range cfg.Languages {
		name := endonym(code)
		h.endonyms[code] = name
		h.languages = append(h.languages, view.Option{Value: code, Label: name})
	}

	logger.Info().Msg("http handler created")
	return h, nil
}

// endonym names a language in itself, e.g. "Deutsch" for "de".
func endonym(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}
