package services

import (
	"testing"

	"github.com/mikespe/calcalc2.0/config"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

// setupTestDB points the package-global handle at a fresh in-memory
// database. The shared-cache name keeps gorm's pooled connections on the
// same database within one test.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := config.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	config.DB = db
}
