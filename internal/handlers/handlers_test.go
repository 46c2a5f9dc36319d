package handlers

import (
  "context"
  "encoding/json"
  "fmt"
  "net/http"
  "net/http/httptest"
  "strings"
  "testing"
  "time"

  "github.com/gin-gonic/gin"

  "github.com/chatbox-org/chatbox-backend/internal/apperr"
  "github.com/chatbox-org/chatbox-backend/internal/services"
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

type mockUserService struct {
  RegisterUserFunc func(ctx context.Context, username, email, password string) (*types.User, error)
}

func (m *mockUserService) RegisterUser(ctx context.Context, username, email, password string) (*types.User, error) {
  return m.RegisterUserFunc(ctx, username, email, password)
}

type mockChatService struct {
  HandleChatTurnFunc func(ctx context.Context, req *services.ChatTurnRequest) (*services.ChatTurnResult, error)
}

func (m *mockChatService) HandleChatTurn(ctx context.Context, req *services.ChatTurnRequest) (*services.ChatTurnResult, error) {
  return m.HandleChatTurnFunc(ctx, req)
}

type mockConversationService struct {
  GetWithMessagesFunc                  func(ctx context.Context, conversationID uint) (*types.Conversation, error)
  GetUserConversationsWithMessagesFunc func(ctx context.Context, userID uint) ([]*types.Conversation, error)
}

func (m *mockConversationService) GetWithMessages(ctx context.Context, conversationID uint) (*types.Conversation, error) {
  return m.GetWithMessagesFunc(ctx, conversationID)
}

func (m *mockConversationService) GetUserConversationsWithMessages(ctx context.Context, userID uint) ([]*types.Conversation, error) {
  return m.GetUserConversationsWithMessagesFunc(ctx, userID)
}

func performRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
  req := httptest.NewRequest(method, path, strings.NewReader(body))
  req.Header.Set("Content-Type", "application/json")
  recorder := httptest.NewRecorder()
  router.ServeHTTP(recorder, req)
  return recorder
}

func TestCreateUserSuccessNeverEchoesHash(t *testing.T) {
  gin.SetMode(gin.TestMode)
  userService := &mockUserService{
    RegisterUserFunc: func(ctx context.Context, username, email, password string) (*types.User, error) {
      return &types.User{
        ID:           1,
        Username:     "bob",
        Email:        "bob@x.com",
        PasswordHash: "$2a$10$secrethash",
        CreatedAt:    time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
      }, nil
    },
  }
  router := gin.New()
  router.POST("/api/users", NewUserHandler(userService).CreateUser)

  resp := performRequest(router, http.MethodPost, "/api/users", `{"username":"bob","email":"bob@x.com","password":"longenough1"}`)

  if resp.Code != http.StatusCreated {
    t.Fatalf("status = %d, want 201; body: %s", resp.Code, resp.Body.String())
  }
  var body map[string]interface{}
  if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
    t.Fatalf("failed to decode response: %v", err)
  }
  if body["username"] != "bob" || body["email"] != "bob@x.com" {
    t.Errorf("response identity = (%v, %v), want (bob, bob@x.com)", body["username"], body["email"])
  }
  if strings.Contains(resp.Body.String(), "secrethash") {
    t.Error("the password hash leaked into the response body")
  }
}

func TestCreateUserErrorMapping(t *testing.T) {
  gin.SetMode(gin.TestMode)
  tests := []struct {
    name       string
    err        error
    wantStatus int
    wantError  string
  }{
    {"conflict", fmt.Errorf("username or email %w", apperr.ErrConflict), http.StatusBadRequest, "username or email already exists"},
    {"validation", apperr.NewValidationError("password", "password must be at least 8 characters"), http.StatusUnprocessableEntity, "password must be at least 8 characters"},
    {"unexpected", fmt.Errorf("pq: connection refused"), http.StatusInternalServerError, "internal server error"},
  }
  for _, tc := range tests {
    t.Run(tc.name, func(t *testing.T) {
      userService := &mockUserService{
        RegisterUserFunc: func(ctx context.Context, username, email, password string) (*types.User, error) {
          return nil, tc.err
        },
      }
      router := gin.New()
      router.POST("/api/users", NewUserHandler(userService).CreateUser)

      resp := performRequest(router, http.MethodPost, "/api/users", `{"username":"bob","email":"bob@x.com","password":"x"}`)

      if resp.Code != tc.wantStatus {
        t.Fatalf("status = %d, want %d; body: %s", resp.Code, tc.wantStatus, resp.Body.String())
      }
      var body map[string]interface{}
      if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
        t.Fatalf("failed to decode response: %v", err)
      }
      if body["error"] != tc.wantError {
        t.Errorf("error message = %v, want %q", body["error"], tc.wantError)
      }
    })
  }
}

func TestChatNewConversation(t *testing.T) {
  gin.SetMode(gin.TestMode)
  chatService := &mockChatService{
    HandleChatTurnFunc: func(ctx context.Context, req *services.ChatTurnRequest) (*services.ChatTurnResult, error) {
      if req.ConversationID != nil {
        t.Errorf("conversation id = %v, want nil for a fresh conversation", *req.ConversationID)
      }
      if len(req.Messages) != 1 || req.Messages[0].Role != types.RoleUser || req.Messages[0].Content != "hi" {
        t.Errorf("inbound messages mapped as %v", req.Messages)
      }
      return &services.ChatTurnResult{ConversationID: 7, Reply: "hello there"}, nil
    },
  }
  router := gin.New()
  router.POST("/api/chat", NewChatHandler(chatService).Chat)

  resp := performRequest(router, http.MethodPost, "/api/chat", `{"messages":[{"role":"user","content":"hi"}]}`)

  if resp.Code != http.StatusOK {
    t.Fatalf("status = %d, want 200; body: %s", resp.Code, resp.Body.String())
  }
  var body struct {
    ConversationID uint   `json:"conversation_id"`
    Messages       string `json:"messages"`
  }
  if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
    t.Fatalf("failed to decode response: %v", err)
  }
  if body.ConversationID != 7 || body.Messages != "hello there" {
    t.Errorf("response = %+v, want conversation 7 with reply %q", body, "hello there")
  }
}

func TestChatErrorMapping(t *testing.T) {
  gin.SetMode(gin.TestMode)
  tests := []struct {
    name       string
    err        error
    wantStatus int
  }{
    {"unknown conversation", fmt.Errorf("conversation 42: %w", apperr.ErrNotFound), http.StatusNotFound},
    {"model unavailable", apperr.ErrModelUnavailable, http.StatusInternalServerError},
    {"generation failed", apperr.ErrGenerationFailed, http.StatusInternalServerError},
  }
  for _, tc := range tests {
    t.Run(tc.name, func(t *testing.T) {
      chatService := &mockChatService{
        HandleChatTurnFunc: func(ctx context.Context, req *services.ChatTurnRequest) (*services.ChatTurnResult, error) {
          return nil, tc.err
        },
      }
      router := gin.New()
      router.POST("/api/chat", NewChatHandler(chatService).Chat)

      resp := performRequest(router, http.MethodPost, "/api/chat", `{"conversation_id":42,"messages":[{"role":"user","content":"hi"}]}`)

      if resp.Code != tc.wantStatus {
        t.Fatalf("status = %d, want %d; body: %s", resp.Code, tc.wantStatus, resp.Body.String())
      }
      if tc.wantStatus == http.StatusInternalServerError && !strings.Contains(resp.Body.String(), "something went wrong, try again later") {
        t.Errorf("model failures must answer with the generic message; body: %s", resp.Body.String())
      }
    })
  }
}

func TestGetConversationResponseShape(t *testing.T) {
  gin.SetMode(gin.TestMode)
  created := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
  conversationService := &mockConversationService{
    GetWithMessagesFunc: func(ctx context.Context, conversationID uint) (*types.Conversation, error) {
      return &types.Conversation{
        ID:        conversationID,
        Title:     "hi",
        Prompt:    types.DefaultSystemPrompt,
        CreatedAt: created,
        Messages: []*types.Message{
          {ID: 1, SentBy: types.SenderUser, Content: "hi", CreatedAt: created},
          {ID: 2, SentBy: types.SenderAssistant, Content: "hello there", CreatedAt: created},
        },
      }, nil
    },
  }
  router := gin.New()
  router.GET("/api/conv-with-msg/:conversation_id", NewConversationHandler(conversationService).GetConversation)

  resp := performRequest(router, http.MethodGet, "/api/conv-with-msg/3", "")

  if resp.Code != http.StatusOK {
    t.Fatalf("status = %d, want 200; body: %s", resp.Code, resp.Body.String())
  }
  var body struct {
    ConversationID uint   `json:"conversation_id"`
    Title          string `json:"title"`
    Prompt         string `json:"prompt"`
    Messages       []struct {
      ID      uint   `json:"id"`
      Sender  string `json:"sender"`
      Content string `json:"content"`
    } `json:"messages"`
  }
  if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
    t.Fatalf("failed to decode response: %v", err)
  }
  if body.ConversationID != 3 || body.Title != "hi" || body.Prompt != types.DefaultSystemPrompt {
    t.Errorf("conversation fields = %+v", body)
  }
  if len(body.Messages) != 2 || body.Messages[0].Sender != "user" || body.Messages[1].Sender != "assistant" {
    t.Fatalf("messages = %+v, want user then assistant", body.Messages)
  }
}

func TestGetConversationBadIDParam(t *testing.T) {
  gin.SetMode(gin.TestMode)
  conversationService := &mockConversationService{}
  router := gin.New()
  router.GET("/api/conv-with-msg/:conversation_id", NewConversationHandler(conversationService).GetConversation)

  for _, param := range []string{"abc", "0", "-3"} {
    resp := performRequest(router, http.MethodGet, "/api/conv-with-msg/"+param, "")
    if resp.Code != http.StatusNotFound {
      t.Errorf("id %q: status = %d, want 404", param, resp.Code)
    }
  }
}

func TestHealth(t *testing.T) {
  gin.SetMode(gin.TestMode)
  router := gin.New()
  router.GET("/health", Health)

  resp := performRequest(router, http.MethodGet, "/health", "")

  if resp.Code != http.StatusOK {
    t.Fatalf("status = %d, want 200", resp.Code)
  }
  if !strings.Contains(resp.Body.String(), `"status":"healthy"`) {
    t.Errorf("body = %s, want a healthy status", resp.Body.String())
  }
}
