// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/handler"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	workers    *workers.Workers
	logger     *logger.Logger
}

// NewServer creates the servers for the configured addresses. bg runs
// alongside them and is stopped after they are.
func NewServer(handlers *handler.Handlers, bg *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: bg, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run serves until ctx is done. Servers stop first so no new work reaches
// the workers, then the workers drain.
func (s *server) run(ctx context.Context) {
	workersCtx, stopWorkers := context.WithCancel(context.Background())
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if s.workers != nil {
			s.workers.Run(workersCtx)
		}
	}()

	if s.httpServer != nil {
		s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Str("address", s.gRPCServer.gRPCNetListener.Addr().String()).Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()

	s.Shutdown()
	stopWorkers()
	<-workersDone

	s.logger.Info().Msg("server Shutdown gracefully")
}
