package store

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/beesaferoot/rentdesk/property/models"
)

// Store owns the database handle. The DSN is either a postgres:// URL or
// a path to a SQLite file; the default deployment is the single-writer
// SQLite file, with Postgres available for anyone who outgrows it.
type Store struct {
	db     *gorm.DB
	dsn    string
	logger *zap.Logger
}

func Open(dsn string, log *zap.Logger) (*Store, error) {
	cfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var db *gorm.DB
	var err error
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	} else {
		if dir := filepath.Dir(dsn); dsn != ":memory:" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create database directory: %w", err)
			}
		}
		// The pragma is per-connection in SQLite, so it has to ride the
		// DSN: database/sql opens more connections later and each one
		// needs foreign keys switched on.
		db, err = gorm.Open(sqlite.Open(dsn+"?_foreign_keys=on"), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	log.Info("database opened", zap.String("dsn", redactDSN(dsn)))
	return &Store{db: db, dsn: dsn, logger: log}, nil
}

// redactDSN strips credentials from a postgres URL before it reaches
// the logs. SQLite paths carry none and pass through unchanged.
func redactDSN(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		u, err := url.Parse(dsn)
		if err != nil {
			return "postgres://[redacted]"
		}
		u.User = nil
		return u.String()
	}
	return dsn
}

func (s *Store) DB() *gorm.DB {
	return s.db
}

// FilePath returns the backing file path when the store is SQLite-backed.
func (s *Store) FilePath() (string, bool) {
	if strings.HasPrefix(s.dsn, "postgres://") || strings.HasPrefix(s.dsn, "postgresql://") || s.dsn == ":memory:" {
		return "", false
	}
	return s.dsn, true
}

// Init creates any missing tables from the model registry. Idempotent,
// safe to run on every startup.
func (s *Store) Init() error {
	names := make([]string, 0, len(models.ModelTypeRegistry))
	for name := range models.ModelTypeRegistry {
		names = append(names, name)
	}
	sort.Strings(names)

	registered := make([]interface{}, 0, len(names))
	for _, name := range names {
		registered = append(registered, models.ModelTypeRegistry[name])
	}

	// One AutoMigrate call lets gorm order tables by their foreign-key
	// dependencies.
	if err := s.db.AutoMigrate(registered...); err != nil {
		return fmt.Errorf("failed to migrate models: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
