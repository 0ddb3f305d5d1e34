// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-tree-admin/internal/adapter"
	"github.com/MKhiriev/go-tree-admin/internal/app"
	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/crypto"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/internal/service"
	"github.com/MKhiriev/go-tree-admin/internal/store"
	"github.com/MKhiriev/go-tree-admin/internal/tui"
	"github.com/MKhiriev/go-tree-admin/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	log, closer, err := logger.NewFileLogger("tree-admin-cli", filepath.Join(os.TempDir(), "tree-admin-cli.log"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging disabled: %v\n", err)
	}
	defer closer.Close()

	if err = run(context.Background(), buildInfo, log); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			fmt.Println("Nothing was deleted.")
			return
		}
		log.Error().Err(err).Msg("admin cli failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, buildInfo models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	if cfg.Cleanup.Actor == "" {
		return errors.New("no cleanup actor configured, set CLEANUP_ACTOR")
	}

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("error applying migrations: %w", err)
	}

	mailer, err := adapter.NewMailer(cfg.Mail, log)
	if err != nil {
		return fmt.Errorf("error creating mailer: %w", err)
	}

	services, err := service.NewServices(store.NewStorages(db, log), mailer, crypto.NewPasswordHasher(), cfg, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating services: %w", err)
	}

	actor, err := services.SessionService.ResolveActorByName(ctx, cfg.Cleanup.Actor)
	if err != nil {
		return fmt.Errorf("error resolving cleanup actor %q: %w", cfg.Cleanup.Actor, err)
	}
	tree, err := services.SessionService.ResolveTree(ctx, "")
	if err != nil {
		return fmt.Errorf("error resolving tree: %w", err)
	}

	rc := models.RequestContext{
		Tree:     tree,
		Actor:    actor,
		PageType: models.PageTree,
		Token:    services.SessionService.CSRFToken(actor),
	}

	cleanup, err := tui.New(services.UserAdminService, rc, cfg.Cleanup.Months, log)
	if err != nil {
		return err
	}

	deleted, err := cleanup.Run(ctx)
	for _, name := range deleted {
		fmt.Printf(app.MsgUserDeleted+"\n", name)
	}

	return err
}
