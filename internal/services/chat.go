package services

import (
  "context"
  "fmt"

  "gorm.io/gorm"

  "github.com/chatbox-org/chatbox-backend/internal/apperr"
  "github.com/chatbox-org/chatbox-backend/internal/logger"
  "github.com/chatbox-org/chatbox-backend/internal/prompt"
  "github.com/chatbox-org/chatbox-backend/internal/repos"
  "github.com/chatbox-org/chatbox-backend/internal/requestdata"
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

const fallbackConversationTitle = "New Conversation"

const maxMessageContentLength = 4000

// ChatTurnRequest is one inbound /chat call: an optional conversation
// to continue, an optional system prompt for a fresh conversation, and
// the client's message list whose last entry is the new utterance.
type ChatTurnRequest struct {
  ConversationID    *uint
  Prompt            string
  Messages          []types.PromptMessage
}

type ChatTurnResult struct {
  ConversationID    uint
  Reply             string
}

type ChatService interface {
  HandleChatTurn(ctx context.Context, req *ChatTurnRequest) (*ChatTurnResult, error)
}

type chatService struct {
  db                *gorm.DB
  log               *logger.Logger
  conversationRepo  repos.ConversationRepo
  messageRepo       repos.MessageRepo
  modelService      ModelService
  devUserID         uint
}

func NewChatService(db *gorm.DB, log *logger.Logger, conversationRepo repos.ConversationRepo, messageRepo repos.MessageRepo, modelService ModelService, devUserID uint) ChatService {
  serviceLog := log.With("service", "ChatService")
  return &chatService{
    db:               db,
    log:              serviceLog,
    conversationRepo: conversationRepo,
    messageRepo:      messageRepo,
    modelService:     modelService,
    devUserID:        devUserID,
  }
}

// HandleChatTurn serves one send-a-chat-message request end to end:
// resolve or create the conversation, assemble the model input,
// generate, then persist the user/assistant pair as one atomic unit.
// Persistence happens only after a successful generation, so a failed
// call leaves the message history untouched.
func (cs *chatService) HandleChatTurn(ctx context.Context, req *ChatTurnRequest) (*ChatTurnResult, error) {
  cs.log.Info("Starting Handle Chat Turn now...")

  //1) Validate inbound messages
  if vErr := validateChatTurn(req); vErr != nil {
    return nil, vErr
  }

  //2) Model must be loaded before any turn is served
  if cs.modelService == nil {
    cs.log.Warn("Chat turn requested but no model is loaded")
    return nil, apperr.ErrModelUnavailable
  }

  latestUserMessage := req.Messages[len(req.Messages)-1].Content

  //3) Resolve or create the target conversation
  conversation, rErr := cs.resolveConversation(ctx, req, latestUserMessage)
  if rErr != nil {
    return nil, rErr
  }

  //4) Assemble the model input and generate. The model call runs
  //   outside any transaction — it is the one long-latency step.
  builtPrompt := prompt.BuildPrompt(conversation, latestUserMessage)
  reply, gErr := cs.modelService.Generate(ctx, builtPrompt)
  if gErr != nil {
    cs.log.Warn("Generation failed, persisting nothing for this turn", "conversationID", conversation.ID, "error", gErr)
    return nil, gErr
  }

  //5) Persist both sides of the turn atomically
  tErr := cs.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
    _, aErr := cs.messageRepo.AppendTurn(ctx, tx, conversation.ID, latestUserMessage, reply)
    return aErr
  })
  if tErr != nil {
    cs.log.Warn("Failed to append turn, transaction rolled back", "conversationID", conversation.ID, "error", tErr)
    return nil, fmt.Errorf("Failed appending chat turn: %w", tErr)
  }

  return &ChatTurnResult{ConversationID: conversation.ID, Reply: reply}, nil
}

// resolveConversation looks up the requested conversation with its
// messages eagerly loaded, or creates a fresh one when no id was
// given. A missing id is a hard not-found — a new conversation is
// never fabricated under an id the caller invented.
func (cs *chatService) resolveConversation(ctx context.Context, req *ChatTurnRequest, latestUserMessage string) (*types.Conversation, error) {
  if req.ConversationID != nil {
    conversation, err := cs.conversationRepo.GetByID(ctx, nil, *req.ConversationID, true)
    if err != nil {
      return nil, err
    }
    if conversation == nil {
      cs.log.Warn("Chat turn references a conversation that does not exist", "conversationID", *req.ConversationID)
      return nil, fmt.Errorf("conversation %d: %w", *req.ConversationID, apperr.ErrNotFound)
    }
    return conversation, nil
  }
  title := deriveTitle(req.Messages)
  conversation, err := cs.conversationRepo.Create(ctx, nil, cs.actingUserID(ctx), title, req.Prompt)
  if err != nil {
    return nil, err
  }
  return conversation, nil
}

func (cs *chatService) actingUserID(ctx context.Context) uint {
  if rd := requestdata.GetRequestData(ctx); rd != nil && rd.UserID != 0 {
    return rd.UserID
  }
  return cs.devUserID
}

// deriveTitle takes the content of the last inbound message. The
// fallback is unreachable through the HTTP surface, which already
// requires a non-empty message list, but it stays the documented
// default.
func deriveTitle(messages []types.PromptMessage) string {
  if len(messages) == 0 {
    return fallbackConversationTitle
  }
  return messages[len(messages)-1].Content
}

func validateChatTurn(req *ChatTurnRequest) error {
  if len(req.Messages) == 0 {
    return apperr.NewValidationError("messages", "at least one message is required")
  }
  for _, msg := range req.Messages {
    if msg.Content == "" {
      return apperr.NewValidationError("messages", "message content must not be empty")
    }
    if len(msg.Content) > maxMessageContentLength {
      return apperr.NewValidationError("messages", "message content must be at most 4000 characters")
    }
  }
  if len(req.Prompt) > maxMessageContentLength {
    return apperr.NewValidationError("prompt", "prompt must be at most 4000 characters")
  }
  return nil
}
