package repos

import (
    "context"
    "errors"
    "fmt"

    "gorm.io/gorm"

    "github.com/chatbox-org/chatbox-backend/internal/logger"
    "github.com/chatbox-org/chatbox-backend/internal/types"
)

type ConversationRepo interface {
    // CREATE
    Create(ctx context.Context, tx *gorm.DB, userID uint, title, prompt string) (*types.Conversation, error)

    // READ
    GetByID(ctx context.Context, tx *gorm.DB, conversationID uint, withMessages bool) (*types.Conversation, error)
    GetByUserID(ctx context.Context, tx *gorm.DB, userID uint, withMessages bool) ([]*types.Conversation, error)

    // DELETE
    DeleteByID(ctx context.Context, tx *gorm.DB, conversationID uint) error
}

type conversationRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewConversationRepo(db *gorm.DB, baseLog *logger.Logger) ConversationRepo {
    repoLog := baseLog.With("repo", "ConversationRepo")
    return &conversationRepo{db: db, log: repoLog}
}

// Create inserts a conversation for the user. An empty prompt is
// replaced with types.DefaultSystemPrompt so the stored prompt is never
// blank; once set it is not mutated by later turns.
func (cr *conversationRepo) Create(ctx context.Context, tx *gorm.DB, userID uint, title, prompt string) (*types.Conversation, error) {
    transaction := tx
    if transaction == nil {
        transaction = cr.db
    }
    if prompt == "" {
        prompt = types.DefaultSystemPrompt
    }
    conversation := &types.Conversation{
        UserID: userID,
        Title:  title,
        Prompt: prompt,
    }
    if err := transaction.WithContext(ctx).Create(conversation).Error; err != nil {
        cr.log.Warn("Failed to create conversation", "userID", userID, "error", err)
        return nil, fmt.Errorf("Failed creating conversation: %w", err)
    }
    return conversation, nil
}

// GetByID returns (nil, nil) when no row exists for the id. With
// withMessages the message collection is materialized in one extra
// query via Preload, ordered by created_at then id — never one query
// per message.
func (cr *conversationRepo) GetByID(ctx context.Context, tx *gorm.DB, conversationID uint, withMessages bool) (*types.Conversation, error) {
    transaction := tx
    if transaction == nil {
        transaction = cr.db
    }
    query := transaction.WithContext(ctx)
    if withMessages {
        query = query.Preload("Messages", func(db *gorm.DB) *gorm.DB {
            return db.Order("created_at ASC, id ASC")
        })
    }
    var conversation types.Conversation
    if err := query.
        Where("id = ?", conversationID).
        First(&conversation).Error; err != nil {
        if errors.Is(err, gorm.ErrRecordNotFound) {
            return nil, nil
        }
        cr.log.Warn("Failed to fetch conversation by id", "conversationID", conversationID, "error", err)
        return nil, fmt.Errorf("Failed fetching conversation by id: %w", err)
    }
    return &conversation, nil
}

func (cr *conversationRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint, withMessages bool) ([]*types.Conversation, error) {
    transaction := tx
    if transaction == nil {
        transaction = cr.db
    }
    query := transaction.WithContext(ctx)
    if withMessages {
        query = query.Preload("Messages", func(db *gorm.DB) *gorm.DB {
            return db.Order("created_at ASC, id ASC")
        })
    }
    var conversations []*types.Conversation
    if err := query.
        Where("user_id = ?", userID).
        Order("created_at DESC").
        Find(&conversations).Error; err != nil {
        cr.log.Warn("Failed to fetch conversations for user", "userID", userID, "error", err)
        return nil, fmt.Errorf("Failed fetching conversations for user: %w", err)
    }
    return conversations, nil
}

func (cr *conversationRepo) DeleteByID(ctx context.Context, tx *gorm.DB, conversationID uint) error {
    transaction := tx
    if transaction == nil {
        transaction = cr.db
    }
    if err := transaction.WithContext(ctx).
        Where("id = ?", conversationID).
        Delete(&types.Conversation{}).Error; err != nil {
        cr.log.Warn("Failed to delete conversation", "conversationID", conversationID, "error", err)
        return fmt.Errorf("Failed deleting conversation: %w", err)
    }
    return nil
}
