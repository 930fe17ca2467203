package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Message is one message inside a conversation. Created once, the read
// flag flips false -> true once, never deleted.
type Message struct {
	ID             string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	ConversationID string    `gorm:"column:conversation_id;type:char(36);not null;index" json:"conversation_id"`
	SenderID       string    `gorm:"column:sender_id;type:char(36);not null" json:"sender_id"`
	Content        string    `gorm:"column:content;type:text;not null" json:"content"`
	IsRead         bool      `gorm:"column:is_read;default:false" json:"is_read"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Message) TableName() string {
	return "messages"
}

// BeforeCreate assigns a UUID primary key
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return nil
}

// SendMessageRequest message payload
type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

// MessageResponse is a message enriched with its sender's display name
type MessageResponse struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversation_id"`
	SenderID       string    `json:"sender_id"`
	SenderName     string    `json:"sender_name"`
	Content        string    `json:"content"`
	IsRead         bool      `json:"is_read"`
	CreatedAt      time.Time `json:"created_at"`
}
