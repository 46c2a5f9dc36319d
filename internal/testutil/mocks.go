package testutil

import (
  "context"

  "gorm.io/gorm"

  "github.com/chatbox-org/chatbox-backend/internal/types"
)

// Function-field mocks for the repo interfaces. A nil field means the
// test did not expect that call, so panicking on it is the right
// failure mode.

type MockUserRepo struct {
  CreateFunc          func(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error)
  GetByIDFunc         func(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error)
  UsernameExistsFunc  func(ctx context.Context, tx *gorm.DB, username string) (bool, error)
  EmailExistsFunc     func(ctx context.Context, tx *gorm.DB, email string) (bool, error)
  DeleteByIDFunc      func(ctx context.Context, tx *gorm.DB, userID uint) error
}

func (m *MockUserRepo) Create(ctx context.Context, tx *gorm.DB, user *types.User) (*types.User, error) {
  return m.CreateFunc(ctx, tx, user)
}

func (m *MockUserRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
  return m.GetByIDFunc(ctx, tx, userID)
}

func (m *MockUserRepo) UsernameExists(ctx context.Context, tx *gorm.DB, username string) (bool, error) {
  return m.UsernameExistsFunc(ctx, tx, username)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, tx *gorm.DB, email string) (bool, error) {
  return m.EmailExistsFunc(ctx, tx, email)
}

func (m *MockUserRepo) DeleteByID(ctx context.Context, tx *gorm.DB, userID uint) error {
  return m.DeleteByIDFunc(ctx, tx, userID)
}

type MockConversationRepo struct {
  CreateFunc        func(ctx context.Context, tx *gorm.DB, userID uint, title, prompt string) (*types.Conversation, error)
  GetByIDFunc       func(ctx context.Context, tx *gorm.DB, conversationID uint, withMessages bool) (*types.Conversation, error)
  GetByUserIDFunc   func(ctx context.Context, tx *gorm.DB, userID uint, withMessages bool) ([]*types.Conversation, error)
  DeleteByIDFunc    func(ctx context.Context, tx *gorm.DB, conversationID uint) error
}

func (m *MockConversationRepo) Create(ctx context.Context, tx *gorm.DB, userID uint, title, prompt string) (*types.Conversation, error) {
  return m.CreateFunc(ctx, tx, userID, title, prompt)
}

func (m *MockConversationRepo) GetByID(ctx context.Context, tx *gorm.DB, conversationID uint, withMessages bool) (*types.Conversation, error) {
  return m.GetByIDFunc(ctx, tx, conversationID, withMessages)
}

func (m *MockConversationRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uint, withMessages bool) ([]*types.Conversation, error) {
  return m.GetByUserIDFunc(ctx, tx, userID, withMessages)
}

func (m *MockConversationRepo) DeleteByID(ctx context.Context, tx *gorm.DB, conversationID uint) error {
  return m.DeleteByIDFunc(ctx, tx, conversationID)
}

type MockMessageRepo struct {
  CreateMessagesFunc       func(ctx context.Context, tx *gorm.DB, msgs []*types.Message) ([]*types.Message, error)
  GetByConversationIDFunc  func(ctx context.Context, tx *gorm.DB, conversationID uint) ([]*types.Message, error)
  AppendTurnFunc           func(ctx context.Context, tx *gorm.DB, conversationID uint, userContent, assistantContent string) ([]*types.Message, error)
}

func (m *MockMessageRepo) CreateMessages(ctx context.Context, tx *gorm.DB, msgs []*types.Message) ([]*types.Message, error) {
  return m.CreateMessagesFunc(ctx, tx, msgs)
}

func (m *MockMessageRepo) GetByConversationID(ctx context.Context, tx *gorm.DB, conversationID uint) ([]*types.Message, error) {
  return m.GetByConversationIDFunc(ctx, tx, conversationID)
}

func (m *MockMessageRepo) AppendTurn(ctx context.Context, tx *gorm.DB, conversationID uint, userContent, assistantContent string) ([]*types.Message, error) {
  return m.AppendTurnFunc(ctx, tx, conversationID, userContent, assistantContent)
}
