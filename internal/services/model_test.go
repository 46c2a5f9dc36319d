package services

import (
  "context"
  "encoding/json"
  "errors"
  "net/http"
  "net/http/httptest"
  "testing"

  openai "github.com/sashabaranov/go-openai"

  "github.com/chatbox-org/chatbox-backend/internal/apperr"
  "github.com/chatbox-org/chatbox-backend/internal/testutil"
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

func newModelServiceForTest(t *testing.T, baseURL string) *modelService {
  t.Helper()
  cfg := openai.DefaultConfig("")
  cfg.BaseURL = baseURL
  return &modelService{
    log:          testutil.NewTestLogger(t),
    client:       openai.NewClientWithConfig(cfg),
    modelName:    "test-model",
    maxNewTokens: 16,
  }
}

func TestNewModelServiceRequiresBaseURL(t *testing.T) {
  t.Setenv("MODEL_BASE_URL", "")

  if _, err := NewModelService(testutil.NewTestLogger(t)); err == nil {
    t.Fatal("expected an error when MODEL_BASE_URL is not configured")
  }
}

func TestGenerateSendsSequenceAndReturnsCompletion(t *testing.T) {
  var received struct {
    Model     string `json:"model"`
    MaxTokens int    `json:"max_tokens"`
    Messages  []struct {
      Role    string `json:"role"`
      Content string `json:"content"`
    } `json:"messages"`
  }
  server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
      t.Errorf("failed to decode model request: %v", err)
    }
    w.Header().Set("Content-Type", "application/json")
    w.Write([]byte(`{"id":"cmpl-1","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"hi there"}}]}`))
  }))
  defer server.Close()

  service := newModelServiceForTest(t, server.URL+"/v1")

  reply, err := service.Generate(context.Background(), []types.PromptMessage{
    {Role: types.RoleSystem, Content: "S"},
    {Role: types.RoleUser, Content: "hi"},
  })
  if err != nil {
    t.Fatalf("generate failed: %v", err)
  }
  if reply != "hi there" {
    t.Errorf("reply = %q, want %q", reply, "hi there")
  }
  if received.Model != "test-model" {
    t.Errorf("model = %q, want %q", received.Model, "test-model")
  }
  if received.MaxTokens != 16 {
    t.Errorf("max_tokens = %d, want 16", received.MaxTokens)
  }
  if len(received.Messages) != 2 || received.Messages[0].Role != "system" || received.Messages[1].Role != "user" {
    t.Errorf("model received messages %v, want the untouched [system, user] sequence", received.Messages)
  }
}

func TestGenerateServerFailureIsGenerationFailed(t *testing.T) {
  server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    http.Error(w, "model blew up", http.StatusInternalServerError)
  }))
  defer server.Close()

  service := newModelServiceForTest(t, server.URL+"/v1")

  _, err := service.Generate(context.Background(), []types.PromptMessage{{Role: types.RoleUser, Content: "hi"}})
  if !errors.Is(err, apperr.ErrGenerationFailed) {
    t.Fatalf("expected ErrGenerationFailed, got %v", err)
  }
}

func TestGenerateEmptyCompletionIsGenerationFailed(t *testing.T) {
  server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
    w.Header().Set("Content-Type", "application/json")
    w.Write([]byte(`{"id":"cmpl-2","object":"chat.completion","choices":[]}`))
  }))
  defer server.Close()

  service := newModelServiceForTest(t, server.URL+"/v1")

  _, err := service.Generate(context.Background(), []types.PromptMessage{{Role: types.RoleUser, Content: "hi"}})
  if !errors.Is(err, apperr.ErrGenerationFailed) {
    t.Fatalf("expected ErrGenerationFailed, got %v", err)
  }
}
