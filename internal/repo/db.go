// Package repo implements the data persistence layer for topics, users,
// articles and comments, backed by GORM. This file contains database
// bootstrapping for PostgreSQL (production) and SQLite (pure Go driver, used
// for local development and tests) plus schema migrations.
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/plugin/opentelemetry/tracing"

	"github.com/tbourn/nc-news/internal/domain"
)

// Supported values for Options.Driver.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Options configures Open.
type Options struct {
	Driver       string // "postgres" or "sqlite"
	DSN          string // postgres connection string
	Path         string // sqlite file path or "file:...?mode=memory" DSN
	MaxOpenConns int
	Tracing      bool // register the OpenTelemetry GORM plugin
	LogSQL       bool
}

// Open connects to the configured store, applies pool settings and, when
// requested, registers tracing. GORM's error translation is always enabled so
// driver-specific constraint failures surface as gorm.ErrForeignKeyViolated,
// gorm.ErrDuplicatedKey, etc.
func Open(opts Options) (*gorm.DB, error) {
	cfg := &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
	if opts.LogSQL {
		cfg.Logger = logger.Default.LogMode(logger.Info)
	}

	var (
		db  *gorm.DB
		err error
	)
	switch strings.ToLower(strings.TrimSpace(opts.Driver)) {
	case DriverPostgres:
		if strings.TrimSpace(opts.DSN) == "" {
			return nil, errors.New("repo: DATABASE_URL is required for the postgres driver")
		}
		db, err = gorm.Open(postgres.Open(opts.DSN), cfg)
	case DriverSQLite, "":
		db, err = openSQLite(opts.Path, cfg)
	default:
		return nil, fmt.Errorf("repo: unsupported driver %q", opts.Driver)
	}
	if err != nil {
		return nil, err
	}

	if sqlDB, err := db.DB(); err == nil {
		n := opts.MaxOpenConns
		if n <= 0 {
			n = 10
		}
		sqlDB.SetMaxOpenConns(n)
		sqlDB.SetMaxIdleConns(n)
		sqlDB.SetConnMaxIdleTime(5 * time.Minute)
		sqlDB.SetConnMaxLifetime(30 * time.Minute)
	}

	if opts.Tracing {
		if err := db.Use(tracing.NewPlugin(tracing.WithoutMetrics())); err != nil {
			return nil, fmt.Errorf("repo: register tracing: %w", err)
		}
	}
	return db, nil
}

// OpenSQLite opens (or creates) a SQLite database with foreign keys enforced.
func OpenSQLite(path string) (*gorm.DB, error) {
	return Open(Options{Driver: DriverSQLite, Path: path})
}

func openSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	if path == "" {
		path = "ncnews.db"
	}
	// Fail early if the parent directory is missing instead of sqlite's
	// opaque "out of memory (14)".
	if !strings.HasPrefix(path, "file:") {
		if dir := filepath.Dir(path); dir != "." {
			if _, err := os.Stat(dir); err != nil {
				return nil, err
			}
		}
	}

	// Pragmas go in the DSN so every pooled connection gets them.
	dsn := path
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	dsn += sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	if !strings.Contains(path, "mode=memory") {
		dsn += "&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	}
	return gorm.Open(sqlite.Open(dsn), cfg)
}

// AutoMigrate creates or updates the schema in FK order.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Topic{},
		&domain.User{},
		&domain.Article{},
		&domain.Comment{},
		&domain.Idempotency{},
	)
}
