// Package dbtest opens throwaway SQLite databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"yatube/internal/adapters/database"
	"yatube/internal/config"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// New returns a migrated database with foreign keys enforced, closed when t ends.
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "yatube.db") + "?_pragma=foreign_keys(1)"
	db, err := config.OpenDB("sqlite", dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
