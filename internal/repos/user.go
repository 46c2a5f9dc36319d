package repos

import (
    "context"
    "errors"
    "fmt"

    "gorm.io/gorm"

    "github.com/chatbox-org/chatbox-backend/internal/logger"
    "github.com/chatbox-org/chatbox-backend/internal/types"
)

type UserRepo interface {
    // CREATE
    Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)

    // READ
    GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error)
    UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error)
    EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error)

    // DELETE
    DeleteByID(ctx context.Context, tx *gorm.DB, userID uint) error
}

type userRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
    // Add a repo field for consistent logs
    repoLog := baseLog.With("repo", "UserRepo")
    return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
    transaction := tx
    if transaction == nil {
        transaction = ur.db
    }
    if err := transaction.WithContext(ctx).Create(user).Error; err != nil {
        ur.log.Warn("Failed to create user", "error", err)
        return nil, fmt.Errorf("Failed creating user: %w", err)
    }
    return user, nil
}

// GetByID returns (nil, nil) when no row exists for the id — callers
// decide whether a missing user is an error.
func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
    transaction := tx
    if transaction == nil {
        transaction = ur.db
    }
    var user types.User
    if err := transaction.WithContext(ctx).
        Where("id = ?", userID).
        First(&user).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, nil
        }
        ur.log.Warn("Failed to fetch user by id", "userID", userID, "error", err)
        return nil, fmt.Errorf("Failed fetching user by id: %w", err)
    }
    return &user, nil
}

func (ur *userRepo) UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
    transaction := tx
    if transaction == nil {
        transaction = ur.db
    }
    var count int64
    if err := transaction.WithContext(ctx).
        Model(&types.User{}).
        Where("username = ?", username).
        Count(&count).Error; err != nil {
        ur.log.Warn("Failed to check username existence", "username", username, "error", err)
        return false, fmt.Errorf("Failed checking username existence: %w", err)
    }
    return count > 0, nil
}

func (ur *userRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
    transaction := tx
    if transaction == nil {
        transaction = ur.db
    }
    var count int64
    if err := transaction.WithContext(ctx).
        Model(&types.User{}).
        Where("email = ?", email).
        Count(&count).Error; err != nil {
        ur.log.Warn("Failed to check email existence", "email", email, "error", err)
        return false, fmt.Errorf("Failed checking email existence: %w", err)
    }
    return count > 0, nil
}

// DeleteByID hard-deletes the user row. Conversations and their
// messages go with it through the ON DELETE CASCADE chain.
func (ur *userRepo) DeleteByID(ctx context.Context, tx *gorm.DB, userID uint) error {
    transaction := tx
    if transaction == nil {
        transaction = ur.db
    }
    if err := transaction.WithContext(ctx).
        Where("id = ?", userID).
        Delete(&types.User{}).Error; err != nil {
        ur.log.Warn("Failed to delete user", "userID", userID, "error", err)
        return fmt.Errorf("Failed deleting user: %w", err)
    }
    return nil
}
