// Package sqlstore implements repo.KVStore on top of gorm, so the session can
// live in a local SQLite file or in a shared Postgres database.
package sqlstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"Mintopia/internal/cli/repo"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// kvEntry: строка таблицы kv_entries.
type kvEntry struct {
	Key       string `gorm:"column:key;primaryKey;size:255"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

func (kvEntry) TableName() string { return "kv_entries" }

// Store is a gorm backed key-value storage.
type Store struct {
	db *gorm.DB
}

var _ repo.KVStore = (*Store)(nil)

// New wraps an open gorm connection and creates the kv_entries table if needed.
func New(db *gorm.DB) (*Store, error) {
	if err := db.AutoMigrate(&kvEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return &Store{db: db}, nil
}

// OpenSQLite opens (and creates if needed) a SQLite file through the pure-Go modernc driver.
func OpenSQLite(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty sqlite path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, err
	}
	dial := gormsqlite.Dialector{DriverName: "sqlite", DSN: path}
	return open(dial)
}

// OpenPostgres connects to Postgres using the given DSN.
func OpenPostgres(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, errors.New("empty postgres dsn")
	}
	return open(postgres.Open(dsn))
}

func open(dial gorm.Dialector) (*Store, error) {
	db, err := gorm.Open(dial, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s, err := New(db)
	if err != nil {
		_ = closeDB(db)
		return nil, err
	}
	return s, nil
}

// Close closes the underlying DB.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return closeDB(s.db)
}

func closeDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Get returns the value stored under key.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if key == "" {
		return "", false, errors.New("empty key")
	}
	var e kvEntry
	tx := s.db.WithContext(ctx).Where(&kvEntry{Key: key}).Limit(1).Find(&e)
	if tx.Error != nil {
		return "", false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return "", false, nil
	}
	return e.Value, true, nil
}

// Set upserts the value under key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.New("empty key")
	}
	e := kvEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&e).Error
}

// Remove deletes key. Missing keys are not an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("empty key")
	}
	return s.db.WithContext(ctx).Where(&kvEntry{Key: key}).Delete(&kvEntry{}).Error
}
