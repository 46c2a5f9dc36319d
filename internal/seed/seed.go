package seed

import (
  "context"
  "fmt"

  "gorm.io/gorm"

  "github.com/chatbox-org/chatbox-backend/internal/logger"
  "github.com/chatbox-org/chatbox-backend/internal/repos"
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

// SeedAll makes sure the development user row exists so /chat works
// without a login flow. Idempotent across restarts.
// TODO: remove once a real auth system replaces the dev user.
func SeedAll(db *gorm.DB, userRepo repos.UserRepo, log *logger.Logger, devUserID uint) error {
  seedLog := log.With("seed", "DevUser")
  ctx := context.Background()

  existing, err := userRepo.GetByID(ctx, nil, devUserID)
  if err != nil {
    return fmt.Errorf("Failed checking for dev user: %w", err)
  }
  if existing != nil {
    seedLog.Info("Dev user already exists, nothing to seed", "userID", devUserID)
    return nil
  }
  devUser := &types.User{
    ID:           devUserID,
    Username:     "dummy_user",
    Email:        "dummy@example.com",
    PasswordHash: "dummy_hash_hash",
  }
  if _, err := userRepo.Create(ctx, nil, devUser); err != nil {
    return fmt.Errorf("Failed creating dev user: %w", err)
  }
  // Inserting with an explicit id does not advance the Postgres id
  // sequence, so bump it past the seeded row or the next registration
  // would collide.
  if err := db.Exec(`SELECT setval(pg_get_serial_sequence('users', 'id'), (SELECT MAX(id) FROM users))`).Error; err != nil {
    seedLog.Warn("Failed to advance users id sequence after seeding", "error", err)
  }
  seedLog.Info("Created dev user for development and testing :)", "userID", devUserID)
  return nil
}
