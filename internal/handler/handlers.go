// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/handler/grpc"
	"github.com/MKhiriev/go-tree-admin/internal/handler/http"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, registry *prometheus.Registry, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		h, err := http.NewHandler(services, cfg.App, registry, logger)
		if err != nil {
			return nil, fmt.Errorf("error creating http handler: %w", err)
		}
		handlers.HTTP = h
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
