package testutil

import (
  "fmt"
  "sync/atomic"
  "testing"

  "gorm.io/driver/sqlite"
  "gorm.io/gorm"
  "gorm.io/gorm/logger"

  "github.com/chatbox-org/chatbox-backend/internal/types"
)

var testDBCounter atomic.Int64

// NewTestDB opens an in-memory SQLite database with foreign keys
// enforced and the full schema migrated, so cascade deletes and FK
// violations behave like the real store. Each call gets its own named
// shared-cache database; a single pooled connection keeps it alive for
// the whole test.
func NewTestDB(t *testing.T) *gorm.DB {
  t.Helper()
  dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared&_foreign_keys=on", testDBCounter.Add(1))
  db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
    Logger: logger.Default.LogMode(logger.Silent),
  })
  if err != nil {
    t.Fatalf("failed to open test database: %v", err)
  }
  sqlDB, err := db.DB()
  if err != nil {
    t.Fatalf("failed to access underlying test database: %v", err)
  }
  sqlDB.SetMaxOpenConns(1)
  t.Cleanup(func() { sqlDB.Close() })

  if err := db.AutoMigrate(&types.User{}, &types.Conversation{}, &types.Message{}); err != nil {
    t.Fatalf("failed to migrate test database: %v", err)
  }
  return db
}
