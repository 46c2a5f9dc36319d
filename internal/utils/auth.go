package utils

import (
  "context"
  "regexp"

  "golang.org/x/crypto/bcrypt"

  "github.com/chatbox-org/chatbox-backend/internal/apperr"
  "github.com/chatbox-org/chatbox-backend/internal/logger"
  "github.com/chatbox-org/chatbox-backend/internal/normalization"
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

const (
  usernameMinLength     = 3
  usernameMaxLength     = 50
  passwordMinLength     = 8
)

// ValidateRegistrationInput runs the pure format checks on a candidate
// user. Uniqueness is the service's job — nothing here touches the
// database, so malformed input is rejected before a session is used.
func ValidateRegistrationInput(ctx context.Context, log *logger.Logger, user *types.User, password string) error {
  //1) Check Username
  if len(user.Username) < usernameMinLength || len(user.Username) > usernameMaxLength {
    log.Warn("Username length is out of range, cannot proceed further. Returning error", "username", user.Username)
    return apperr.NewValidationError("username", "username must be between 3 and 50 characters")
  }

  //2) Check Email
  if !emailPattern.MatchString(user.Email) {
    log.Warn("Email does not match the required pattern, cannot proceed further. Returning error", "email", user.Email)
    return apperr.NewValidationError("email", "email address is not valid")
  }

  //3) Check Password
  if len(password) < passwordMinLength {
    log.Warn("Password is too short, cannot proceed further. Returning error")
    return apperr.NewValidationError("password", "password must be at least 8 characters")
  }
  return nil
}

func HashPassword(ctx context.Context, log *logger.Logger, password string) (string, error) {
  hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
  if err != nil {
    log.Warn("Failure to hash password for user. Returning error", "error", err)
    return "", err
  }
  return string(hashedPassword), nil
}

func VerifyPassword(password, hashedPassword string) bool {
  return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}

// NormalizeUserFields case-folds username and email so uniqueness is
// case-insensitive ("Alice" and "alice" are the same account).
func NormalizeUserFields(ctx context.Context, user *types.User) {
  user.Username = normalization.ParseInputString(user.Username)
  user.Email = normalization.ParseInputString(user.Email)
}
