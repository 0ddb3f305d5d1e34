// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-tree-admin/internal/config"
	"github.com/MKhiriev/go-tree-admin/internal/logger"
)

// sqliteDriverName is go-sqlite3 with Unicode aware lower() and upper().
// The built-in functions only fold ASCII, which breaks case-insensitive
// lookups of names such as "Émile".
const sqliteDriverName = "sqlite3_unicode"

func init() {
	sql.Register(sqliteDriverName, &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			if err := conn.RegisterFunc("lower", sqliteCaseFunc(strings.ToLower), true); err != nil {
				return fmt.Errorf("error registering lower(): %w", err)
			}
			if err := conn.RegisterFunc("upper", sqliteCaseFunc(strings.ToUpper), true); err != nil {
				return fmt.Errorf("error registering upper(): %w", err)
			}
			return nil
		},
	})
}

// sqliteCaseFunc applies fold to text values. NULL and numbers pass
// through unchanged, as with the built-in functions.
func sqliteCaseFunc(fold func(string) string) func(any) any {
	return func(v any) any {
		switch s := v.(type) {
		case string:
			return fold(s)
		case []byte:
			return fold(string(s))
		default:
			return v
		}
	}
}

// NewConnectSQLite opens a SQLite database. The "sqlite://" prefix is
// stripped; "file:" DSNs are passed through. Foreign keys are always enabled.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := sqliteDSN(cfg.DSN)

	conn, err := sql.Open(sqliteDriverName, dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	// SQLite serializes writers; one connection also keeps ":memory:" databases alive.
	conn.SetMaxOpenConns(1)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return newDB(conn, DialectSQLite, log), nil
}

func sqliteDSN(dsn string) string {
	dsn = strings.TrimPrefix(dsn, "sqlite://")
	if strings.Contains(dsn, "_foreign_keys=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}

func sqliteError(err error) *sqlite3.Error {
	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return &liteErr
	}

	return nil
}

// SQLiteErrorClassifier implements [ErrorClassificator] for SQLite.
// Busy and locked databases are retryable, everything else is not.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	liteErr := sqliteError(err)
	if liteErr == nil {
		return NonRetryable
	}

	switch liteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable
	}

	return NonRetryable
}
