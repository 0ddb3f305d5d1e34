// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
	"github.com/MKhiriev/go-tree-admin/migrations"
)

// Dialect names the SQL database behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// ErrorClassificator decides whether a failed statement may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is an open database together with the SQL builder and error
// classification matching its dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// retry bounds for statements classified as [Retryable].
const (
	maxAttempts = 3
	retryDelay  = 50 * time.Millisecond
)

// NewConnect opens the database named by cfg.DSN. "postgres://" and
// "postgresql://" DSNs use the pgx driver; "sqlite://" and "file:" DSNs use
// go-sqlite3.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"), strings.HasPrefix(cfg.DSN, "file:"):
		return NewConnectSQLite(ctx, cfg, log)
	default:
		log.Error().Str("func", "NewConnect").Msg("unsupported DSN scheme")
		return nil, ErrUnsupportedDSN
	}
}

func newDB(conn *sql.DB, dialect Dialect, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect returns the dialect of the open database.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations of the database's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// withRetry runs op again while it fails with a [Retryable] error, up to
// [maxAttempts] times.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil {
			return nil
		}

		if attempt == maxAttempts || db.errorClassificator == nil || db.errorClassificator.Classify(err) != Retryable {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", err, ctx.Err())
		case <-time.After(retryDelay * time.Duration(attempt)):
		}
	}

	return err
}
