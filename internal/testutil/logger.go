package testutil

import (
  "testing"

  "github.com/chatbox-org/chatbox-backend/internal/logger"
)

// NewTestLogger builds a production-mode logger so tests stay quiet at
// debug level.
func NewTestLogger(t *testing.T) *logger.Logger {
  t.Helper()
  log, err := logger.New("production")
  if err != nil {
    t.Fatalf("failed to build test logger: %v", err)
  }
  return log
}
