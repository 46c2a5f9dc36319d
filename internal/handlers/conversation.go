package handlers

import (
  "net/http"
  "strconv"
  "time"

  "github.com/gin-gonic/gin"

  "github.com/chatbox-org/chatbox-backend/internal/services"
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

type ConversationHandler struct {
  conversationService     services.ConversationService
}

func NewConversationHandler(conversationService services.ConversationService) *ConversationHandler {
  return &ConversationHandler{conversationService: conversationService}
}

func (ch *ConversationHandler) GetConversation(c *gin.Context) {
  conversationID, ok := parseIDParam(c, "conversation_id")
  if !ok {
    c.JSON(http.StatusNotFound, gin.H{"error": "Conversation not found"})
    return
  }
  conversation, err := ch.conversationService.GetWithMessages(c.Request.Context(), conversationID)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  c.JSON(http.StatusOK, conversationResponse(conversation))
}

func (ch *ConversationHandler) GetUserConversations(c *gin.Context) {
  userID, ok := parseIDParam(c, "user_id")
  if !ok {
    c.JSON(http.StatusNotFound, gin.H{"error": "No conversations found for user"})
    return
  }
  conversations, err := ch.conversationService.GetUserConversationsWithMessages(c.Request.Context(), userID)
  if err != nil {
    respondServiceError(c, err)
    return
  }
  out := make([]gin.H, 0, len(conversations))
  for _, conversation := range conversations {
    out = append(out, conversationResponse(conversation))
  }
  c.JSON(http.StatusOK, out)
}

// parseIDParam rejects garbage and non-positive ids the same way the
// store would: no such row.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
  raw := c.Param(name)
  id, err := strconv.ParseUint(raw, 10, 64)
  if err != nil || id == 0 {
    return 0, false
  }
  return uint(id), true
}

func conversationResponse(conversation *types.Conversation) gin.H {
  messages := make([]gin.H, 0, len(conversation.Messages))
  for _, msg := range conversation.Messages {
    messages = append(messages, gin.H{
      "id":         msg.ID,
      "sender":     msg.SentBy,
      "content":    msg.Content,
      "created_at": msg.CreatedAt.Format(time.RFC3339),
    })
  }
  return gin.H{
    "conversation_id": conversation.ID,
    "title":           conversation.Title,
    "prompt":          conversation.Prompt,
    "created_at":      conversation.CreatedAt.Format(time.RFC3339),
    "messages":        messages,
  }
}
