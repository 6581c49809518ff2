// Package sqlite stores records in a key-value table through GORM and the
// pure-Go SQLite driver.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/aretw0/jot/pkg/core"
)

// Record is one row of the key-value table.
type Record struct {
	Key       string `gorm:"column:record_key;primaryKey"`
	Value     []byte
	UpdatedAt time.Time
}

// TableName implements gorm's Tabler.
func (Record) TableName() string {
	return "kv_records"
}

// Config holds the configuration for the SQLite backend.
type Config struct {
	// Path is the database file. ":memory:" keeps the database in process.
	Path  string
	Debug bool
}

// Backend implements core.Backend on SQLite.
type Backend struct {
	mu     sync.RWMutex
	config Config
	db     *gorm.DB
	writes int
}

// NewBackend creates a backend. The database is opened by Initialize.
func NewBackend(config Config) *Backend {
	return &Backend{config: config}
}

// Initialize opens the database and migrates the table.
func (b *Backend) Initialize(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.db != nil {
		return nil
	}

	if b.config.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(b.config.Path), 0755); err != nil {
			return fmt.Errorf("%w: %v", core.ErrBackendUnavailable, err)
		}
	}

	level := logger.Silent
	if b.config.Debug {
		level = logger.Info
	}
	db, err := gorm.Open(sqlite.Open(b.config.Path), &gorm.Config{
		Logger: logger.Default.LogMode(level),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to open %s: %v", core.ErrBackendUnavailable, b.config.Path, err)
	}
	if err := db.WithContext(ctx).AutoMigrate(&Record{}); err != nil {
		return fmt.Errorf("%w: failed to migrate: %v", core.ErrBackendUnavailable, err)
	}

	b.db = db
	return nil
}

func (b *Backend) conn() (*gorm.DB, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.db == nil {
		return nil, fmt.Errorf("%w: database not initialized", core.ErrBackendUnavailable)
	}
	return b.db, nil
}

// Get implements core.Backend.
func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	db, err := b.conn()
	if err != nil {
		return nil, false, err
	}

	var rec Record
	err = db.WithContext(ctx).Where("record_key = ?", key).Take(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", core.ErrBackendUnavailable, err)
	}
	return rec.Value, true, nil
}

// Set implements core.Backend as an upsert.
func (b *Backend) Set(ctx context.Context, key string, value []byte) error {
	db, err := b.conn()
	if err != nil {
		return err
	}

	rec := Record{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err = db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("sqlite set %q: %w", key, err)
	}

	b.mu.Lock()
	b.writes++
	b.mu.Unlock()
	return nil
}

// Close releases the database.
func (b *Backend) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.db == nil {
		return nil
	}
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}
	b.db = nil
	return sqlDB.Close()
}

var (
	_ core.Backend     = (*Backend)(nil)
	_ core.Initializer = (*Backend)(nil)
)
