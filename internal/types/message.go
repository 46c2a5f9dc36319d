package types

import (
  "time"
)

// SenderType is a closed two-value enumeration: a message is sent by
// either the user or the assistant. The system prompt lives on the
// conversation, never in the message table.
type SenderType string

const (
  SenderUser      SenderType = "user"
  SenderAssistant SenderType = "assistant"
)

type Message struct {
  ID              uint            `gorm:"primaryKey" json:"id"`
  ConversationID  uint            `gorm:"index;not null;column:conversation_id" json:"conversationID"`
  SentBy          SenderType      `gorm:"size:20;not null;column:sent_by" json:"sentBy"`
  Content         string          `gorm:"size:4000;not null;column:content" json:"content"`

  CreatedAt       time.Time       `gorm:"not null" json:"createdAt"`
  UpdatedAt       *time.Time      `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

func (Message) TableName() string {
  return "messages"
}
