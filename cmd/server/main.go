// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-tree-admin/internal/adapter"
	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/crypto"
	"github.com/MKhiriev/go-tree-admin/internal/handler"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/server"
	"github.com/MKhiriev/go-tree-admin/internal/service"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/internal/workers"
	"github.com/MKhiriev/go-tree-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	log := logger.NewLogger("tree-admin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Msg("received configs")

	db, err := store.NewConnect(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	mailer, err := adapter.NewMailer(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}
	notifications := workers.NewNotificationWorker(mailer, workers.DefaultQueueSize, log)

	services, err := service.NewServices(store.NewStorages(db, log), notifications, crypto.NewPasswordHasher(), cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db.DB, string(db.Dialect())),
	)

	handlers, err := handler.NewHandlers(services, cfg, registry, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	background := []workers.Worker{notifications}
	if handlers.GRPC != nil {
		background = append(background, handlers.GRPC)
	}

	srv, err := server.NewServer(handlers, workers.NewWorkers(background...), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
