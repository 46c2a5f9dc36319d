package types

import (
  "time"
)

// DefaultSystemPrompt seeds model behavior for conversations created
// without an explicit prompt. The repository substitutes it at creation
// time so a persisted conversation never carries an empty prompt.
const DefaultSystemPrompt = "You are a helpful and friendly assistant."

type Conversation struct {
  ID              uint            `gorm:"primaryKey" json:"id"`
  UserID          uint            `gorm:"index;not null;column:user_id" json:"userID"`
  Title           string          `gorm:"size:255;not null;column:title" json:"title"`
  Prompt          string          `gorm:"size:4000;column:prompt" json:"prompt"`

  Messages        []*Message      `gorm:"constraint:OnDelete:CASCADE;foreignKey:ConversationID;references:ID" json:"messages,omitempty"`

  CreatedAt       time.Time       `gorm:"not null" json:"createdAt"`
  UpdatedAt       *time.Time      `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

func (Conversation) TableName() string {
  return "conversations"
}
