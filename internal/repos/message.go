package repos

import (
    "context"
    "fmt"

    "gorm.io/gorm"

    "github.com/chatbox-org/chatbox-backend/internal/logger"
    "github.com/chatbox-org/chatbox-backend/internal/types"
)

type MessageRepo interface {
    CreateMessages(ctx context.Context, tx *gorm.DB, msgs []*types.Message) ([]*types.Message, error)
    GetByConversationID(ctx context.Context, tx *gorm.DB, conversationID uint) ([]*types.Message, error)
    AppendTurn(ctx context.Context, tx *gorm.DB, conversationID uint, userContent, assistantContent string) ([]*types.Message, error)
}

type messageRepo struct {
    db  *gorm.DB
    log *logger.Logger
}

func NewMessageRepo(db *gorm.DB, baseLog *logger.Logger) MessageRepo {
    repoLog := baseLog.With("repo", "MessageRepo")
    return &messageRepo{db: db, log: repoLog}
}

func (mr *messageRepo) CreateMessages(ctx context.Context, tx *gorm.DB, msgs []*types.Message) ([]*types.Message, error) {
    transaction := tx
    if transaction == nil {
        transaction = mr.db
    }
    if len(msgs) == 0 {
        return msgs, nil
    }
    if err := transaction.WithContext(ctx).Create(&msgs).Error; err != nil {
        mr.log.Warn("Failed to create messages", "error", err)
        return nil, fmt.Errorf("Failed creating messages: %w", err)
    }
    return msgs, nil
}

// GetByConversationID is the lazy read path. Same ordering contract as
// the eager load: created_at ascending, insertion order on ties.
func (mr *messageRepo) GetByConversationID(ctx context.Context, tx *gorm.DB, conversationID uint) ([]*types.Message, error) {
    transaction := tx
    if transaction == nil {
        transaction = mr.db
    }
    var msgs []*types.Message
    if err := transaction.WithContext(ctx).
        Where("conversation_id = ?", conversationID).
        Order("created_at ASC, id ASC").
        Find(&msgs).Error; err != nil {
        mr.log.Warn("Failed to fetch messages by conversation id", "conversationID", conversationID, "error", err)
        return nil, fmt.Errorf("Failed fetching messages by conversation id: %w", err)
    }
    return msgs, nil
}

// AppendTurn persists one user/assistant pair as a single batch insert.
// Both rows land or neither does — when no enclosing transaction is
// given it opens its own, so a partial turn is never observable. The
// user row precedes the assistant row in the batch, which keeps its
// created_at no later and its id strictly smaller.
func (mr *messageRepo) AppendTurn(ctx context.Context, tx *gorm.DB, conversationID uint, userContent, assistantContent string) ([]*types.Message, error) {
    msgs := []*types.Message{
        {ConversationID: conversationID, SentBy: types.SenderUser, Content: userContent},
        {ConversationID: conversationID, SentBy: types.SenderAssistant, Content: assistantContent},
    }
    if tx != nil {
        return mr.CreateMessages(ctx, tx, msgs)
    }
    err := mr.db.WithContext(ctx).Transaction(func(innerTx *gorm.DB) error {
        _, txErr := mr.CreateMessages(ctx, innerTx, msgs)
        return txErr
    })
    if err != nil {
        return nil, err
    }
    return msgs, nil
}
