package types

import (
  "time"
)

type User struct {
  ID                  uint              `gorm:"primaryKey" json:"id"`
  Username            string            `gorm:"uniqueIndex;size:50;not null;column:username" json:"username"`
  Email               string            `gorm:"uniqueIndex;size:100;not null;column:email" json:"email"`
  PasswordHash        string            `gorm:"size:255;not null;column:password_hash" json:"-"`

  Conversations       []*Conversation   `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"conversations,omitempty"`

  CreatedAt           time.Time         `gorm:"not null" json:"createdAt"`
  UpdatedAt           *time.Time        `gorm:"autoUpdateTime:false" json:"updatedAt,omitempty"`
}

func (User) TableName() string {
  return "users"
}
