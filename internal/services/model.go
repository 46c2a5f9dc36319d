package services

import (
  "context"
  "fmt"

  openai "github.com/sashabaranov/go-openai"

  "github.com/chatbox-org/chatbox-backend/internal/apperr"
  "github.com/chatbox-org/chatbox-backend/internal/logger"
  "github.com/chatbox-org/chatbox-backend/internal/types"
  "github.com/chatbox-org/chatbox-backend/internal/utils"
)

// ModelService is the boundary to the locally hosted causal language
// model. The server behind MODEL_BASE_URL speaks the OpenAI
// chat-completions dialect (vLLM / llama.cpp style); from here it is a
// black-box text completer. One instance is built at startup and
// injected into the chat service — there is no ambient global handle.
type ModelService interface {
  Generate(ctx context.Context, msgs []types.PromptMessage) (string, error)
}

type modelService struct {
  log               *logger.Logger
  client            *openai.Client
  modelName         string
  maxNewTokens      int
}

func NewModelService(log *logger.Logger) (ModelService, error) {
  serviceLog := log.With("service", "ModelService")
  baseURL := utils.GetEnv("MODEL_BASE_URL", "", log)
  if baseURL == "" {
    return nil, fmt.Errorf("missing MODEL_BASE_URL environment variable")
  }
  apiKey := utils.GetEnv("MODEL_API_KEY", "", log)
  if apiKey == "" {
    serviceLog.Warn("MODEL_API_KEY not set; fine for a local server, remote ones may reject calls")
  }
  modelName := utils.GetEnv("MODEL_NAME", "Qwen/Qwen3-0.6B", log)
  maxNewTokens := utils.GetEnvAsInt("MODEL_MAX_NEW_TOKENS", 100, log)

  cfg := openai.DefaultConfig(apiKey)
  cfg.BaseURL = baseURL
  return &modelService{
    log:          serviceLog,
    client:       openai.NewClientWithConfig(cfg),
    modelName:    modelName,
    maxNewTokens: maxNewTokens,
  }, nil
}

// Generate hands the role-tagged sequence to the model server exactly
// as built and returns the completion text. Every failure mode —
// transport error, non-2xx, empty choice list, blank completion — is
// collapsed into apperr.ErrGenerationFailed with the cause logged here
// and never surfaced to the caller.
func (ms *modelService) Generate(ctx context.Context, msgs []types.PromptMessage) (string, error) {
  chatMsgs := make([]openai.ChatCompletionMessage, 0, len(msgs))
  for _, m := range msgs {
    chatMsgs = append(chatMsgs, openai.ChatCompletionMessage{
      Role:    string(m.Role),
      Content: m.Content,
    })
  }
  resp, err := ms.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
    Model:     ms.modelName,
    Messages:  chatMsgs,
    MaxTokens: ms.maxNewTokens,
  })
  if err != nil {
    ms.log.Warn("Model server call failed", "error", err)
    return "", apperr.ErrGenerationFailed
  }
  if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
    ms.log.Warn("Model server returned no usable completion", "choices", len(resp.Choices))
    return "", apperr.ErrGenerationFailed
  }
  return resp.Choices[0].Message.Content, nil
}
