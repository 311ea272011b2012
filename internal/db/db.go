package db

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/balkashynov/moodlog/internal/models"
)

// DefaultPath is where the database lives relative to the working directory
const DefaultPath = "data/emotions.db"

// Open connects to the SQLite file at path, creating its directory on first run,
// and makes sure the schema exists. The returned store holds the only connection
// for the lifetime of the process; call Close on shutdown.
func Open(path string) (*Store, error) {
	if path == "" {
		path = DefaultPath
	}

	// Ensure the directory exists
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, openFailed(fmt.Errorf("failed to create data directory: %w", err))
		}
	}

	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent), // the store never logs, callers do
	})
	if err != nil {
		return nil, openFailed(fmt.Errorf("failed to connect to database: %w", err))
	}

	// One connection: every operation is serialised anyway
	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, openFailed(err)
	}
	sqlDB.SetMaxOpenConns(1)

	store := NewStore(gdb)
	if err := store.Initialize(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return store, nil
}

// runMigrations creates the schema if it's missing. Safe to run on every startup.
func runMigrations(gdb *gorm.DB) error {
	return gdb.AutoMigrate(&models.EmotionEvent{})
}
