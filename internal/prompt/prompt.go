package prompt

import (
  "github.com/chatbox-org/chatbox-backend/internal/types"
)

// BuildHistory turns a conversation into the role-tagged sequence the
// model consumes: one system record carrying the stored prompt, then
// one record per persisted message in ascending chronological order.
// A conversation with no messages yields just the system record.
func BuildHistory(conversation *types.Conversation) []types.PromptMessage {
  history := make([]types.PromptMessage, 0, len(conversation.Messages)+1)
  history = append(history, types.PromptMessage{
    Role:    types.RoleSystem,
    Content: conversation.Prompt,
  })
  for _, msg := range conversation.Messages {
    role := types.RoleUser
    if msg.SentBy == types.SenderAssistant {
      role = types.RoleAssistant
    }
    history = append(history, types.PromptMessage{
      Role:    role,
      Content: msg.Content,
    })
  }
  return history
}

// BuildPrompt is BuildHistory plus the not-yet-persisted user
// utterance as the trailing record. The sequence is handed to the
// model exactly as built — truncation to a context window, if any, is
// the model server's concern. The utterance text here must match the
// message row stored after generation byte for byte.
func BuildPrompt(conversation *types.Conversation, newUserUtterance string) []types.PromptMessage {
  out := BuildHistory(conversation)
  out = append(out, types.PromptMessage{
    Role:    types.RoleUser,
    Content: newUserUtterance,
  })
  return out
}
