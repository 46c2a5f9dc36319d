package services

import (
  "context"
  "fmt"

  "gorm.io/gorm"

  "github.com/chatbox-org/chatbox-backend/internal/apperr"
  "github.com/chatbox-org/chatbox-backend/internal/logger"
  "github.com/chatbox-org/chatbox-backend/internal/repos"
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

type ConversationService interface {
  GetWithMessages(ctx context.Context, conversationID uint) (*types.Conversation, error)
  GetUserConversationsWithMessages(ctx context.Context, userID uint) ([]*types.Conversation, error)
}

type conversationService struct {
  db               *gorm.DB
  log              *logger.Logger
  conversationRepo repos.ConversationRepo
}

func NewConversationService(db *gorm.DB, log *logger.Logger, conversationRepo repos.ConversationRepo) ConversationService {
  serviceLog := log.With("service", "ConversationService")
  return &conversationService{
    db:               db,
    log:              serviceLog,
    conversationRepo: conversationRepo,
  }
}

func (cs *conversationService) GetWithMessages(ctx context.Context, conversationID uint) (*types.Conversation, error) {
  conversation, err := cs.conversationRepo.GetByID(ctx, nil, conversationID, true)
  if err != nil {
    return nil, err
  }
  if conversation == nil {
    return nil, fmt.Errorf("conversation %d: %w", conversationID, apperr.ErrNotFound)
  }
  return conversation, nil
}

// GetUserConversationsWithMessages lists every conversation the user
// owns, newest first, each with its messages in chronological order.
// A user with no conversations is a not-found, matching the 404 the
// read surface promises.
func (cs *conversationService) GetUserConversationsWithMessages(ctx context.Context, userID uint) ([]*types.Conversation, error) {
  conversations, err := cs.conversationRepo.GetByUserID(ctx, nil, userID, true)
  if err != nil {
    return nil, err
  }
  if len(conversations) == 0 {
    return nil, fmt.Errorf("conversations for user %d: %w", userID, apperr.ErrNotFound)
  }
  return conversations, nil
}
