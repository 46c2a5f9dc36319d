package services

import (
  "context"
  "fmt"

  "gorm.io/gorm"

  "github.com/chatbox-org/chatbox-backend/internal/apperr"
  "github.com/chatbox-org/chatbox-backend/internal/logger"
  "github.com/chatbox-org/chatbox-backend/internal/repos"
  "github.com/chatbox-org/chatbox-backend/internal/types"
  "github.com/chatbox-org/chatbox-backend/internal/utils"
)

type UserService interface {
  RegisterUser(ctx context.Context, username, email, password string) (*types.User, error)
}

type userService struct {
  db        *gorm.DB
  log       *logger.Logger
  userRepo  repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
  serviceLog := log.With("service", "UserService")
  return &userService{
    db:       db,
    log:      serviceLog,
    userRepo: userRepo,
  }
}

// RegisterUser creates a new account. Username and email are
// case-folded before anything else, so uniqueness is case-insensitive.
// The conflict error is deliberately generic — it never says which of
// the two fields collided.
func (us *userService) RegisterUser(ctx context.Context, username, email, password string) (*types.User, error) {
  us.log.Info("Starting Register User now...")
  user := &types.User{
    Username: username,
    Email:    email,
  }

  //1) Normalize User Fields
  utils.NormalizeUserFields(ctx, user)

  //2) Checks on user fields
  if vErr := utils.ValidateRegistrationInput(ctx, us.log, user, password); vErr != nil {
    return nil, vErr
  }

  //3) Hash Password
  passwordHash, hErr := utils.HashPassword(ctx, us.log, password)
  if hErr != nil {
    return nil, fmt.Errorf("Failed to hash password: %w", hErr)
  }
  user.PasswordHash = passwordHash

  //4) Transaction Body
  err := us.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    usernameExists, uErr := us.userRepo.UsernameExists(ctx, tx, user.Username)
    if uErr != nil {
      return uErr
    }
    emailExists, eErr := us.userRepo.EmailExists(ctx, tx, user.Email)
    if eErr != nil {
      return eErr
    }
    if usernameExists || emailExists {
      us.log.Warn("Username or email already in use, cannot proceed further. Returning error.")
      return fmt.Errorf("username or email %w", apperr.ErrConflict)
    }
    _, cErr := us.userRepo.Create(ctx, tx, user)
    return cErr
  })
  if err != nil {
    return nil, err
  }
  us.log.Info("User registered successfully :)", "userID", user.ID, "username", user.Username)
  return user, nil
}
