package types

// ChatRole tags one record in the sequence handed to the language
// model. It is a superset of SenderType: the model additionally sees a
// leading system record.
type ChatRole string

const (
  RoleSystem    ChatRole = "system"
  RoleUser      ChatRole = "user"
  RoleAssistant ChatRole = "assistant"
)

// PromptMessage is one role-tagged record of the model input sequence.
type PromptMessage struct {
  Role      ChatRole      `json:"role"`
  Content   string        `json:"content"`
}
