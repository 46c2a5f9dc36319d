package handlers

import (
  "net/http"

  "github.com/gin-gonic/gin"

  "github.com/chatbox-org/chatbox-backend/internal/services"
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

type ChatHandler struct {
  chatService     services.ChatService
}

func NewChatHandler(chatService services.ChatService) *ChatHandler {
  return &ChatHandler{chatService: chatService}
}

func (ch *ChatHandler) Chat(c *gin.Context) {
  var req struct {
    ConversationID  *uint             `json:"conversation_id,omitempty"`
    Prompt          string            `json:"prompt,omitempty"`
    Messages        []struct {
      Role          string            `json:"role"`
      Content       string            `json:"content"`
    }                                 `json:"messages"`
  }
  if err := c.ShouldBindJSON(&req); err != nil {
    c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
    return
  }
  turnReq := &services.ChatTurnRequest{
    ConversationID: req.ConversationID,
    Prompt:         req.Prompt,
  }
  for _, msg := range req.Messages {
    turnReq.Messages = append(turnReq.Messages, types.PromptMessage{
      Role:    types.ChatRole(msg.Role),
      Content: msg.Content,
    })
  }
  result, err := ch.chatService.HandleChatTurn(c.Request.Context(), turnReq)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, gin.H{
    "conversation_id": result.ConversationID,
    "messages":        result.Reply,
  })
}
