package repository

import (
	"testing"

	"tastebook/internal/database"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory sqlite database with the full schema,
// including the instructions length check constraint.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening in-memory database: %v", err)
	}

	// A single connection keeps every query on the same :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("accessing connection pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrating schema: %v", err)
	}

	t.Cleanup(func() { _ = sqlDB.Close() })
	return db
}
