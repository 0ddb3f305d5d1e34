// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package grpc exposes the standard gRPC health checking service for the
// site. The reported status follows a periodic probe of the database.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/service"
)

// ServiceName is the health service name the site reports under, next to
// the overall "" status.
const ServiceName = "tree_admin"

// DefaultProbeInterval is how often the database is probed.
const DefaultProbeInterval = 15 * time.Second

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server

	interval time.Duration
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		interval: DefaultProbeInterval,
		logger:   logger,
	}
	// unknown until the first probe
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register exposes the health and reflection services on s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
	reflection.Register(s)
}

// Run probes the site until ctx is done. On return every status is
// NOT_SERVING and watchers are told so.
func (h *Handler) Run(ctx context.Context) {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	h.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-ticker.C:
			h.probe(ctx)
		}
	}
}

func (h *Handler) probe(ctx context.Context) {
	summary, err := h.services.AppInfoService.GetSiteSummary(ctx)
	if err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.probe").Msg("site is not serving")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}

	h.logger.Debug().
		Str("func", "*Handler.probe").
		Int("users", summary.Users).
		Int("trees", summary.Trees).
		Msg("site is serving")
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
