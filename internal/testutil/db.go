// Package testutil wires an in-memory sqlite database into the global
// connection so store and handler tests run hermetically.
package testutil

import (
	"testing"

	"github.com/eventhub-dev/eventhub/db"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupDB swaps db.DB for a fresh in-memory database with the full schema
// migrated. A single connection keeps concurrent test writes serialized
// the way a server-side database would.
func SetupDB(t *testing.T) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("access test database: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	prev := db.DB
	db.DB = conn

	if err := db.MigrateDatabase(); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	t.Cleanup(func() {
		db.DB = prev
		sqlDB.Close()
	})
}
