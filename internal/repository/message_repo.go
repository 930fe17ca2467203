package repository

import (
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"gorm.io/gorm"
)

// MessageRepository message data access
type MessageRepository interface {
	Create(msg *domain.Message) error
	// FindByConversationID returns a thread oldest first.
	FindByConversationID(conversationID string) ([]*domain.Message, error)
	// FindByConversationIDs returns messages for a set of conversations in a
	// single query, newest first, so the inbox needs one round-trip instead
	// of one per conversation.
	FindByConversationIDs(conversationIDs []string) ([]*domain.Message, error)
	// MarkRead flips is_read for the given ids. Idempotent; empty input is a no-op.
	MarkRead(ids []string) error
}

type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(msg *domain.Message) error {
	return r.db.Create(msg).Error
}

func (r *messageRepository) FindByConversationID(conversationID string) ([]*domain.Message, error) {
	var messages []*domain.Message
	err := r.db.
		Where("conversation_id = ?", conversationID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) FindByConversationIDs(conversationIDs []string) ([]*domain.Message, error) {
	if len(conversationIDs) == 0 {
		return []*domain.Message{}, nil
	}
	var messages []*domain.Message
	err := r.db.
		Where("conversation_id IN ?", conversationIDs).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *messageRepository) MarkRead(ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Model(&domain.Message{}).Where("id IN ?", ids).
		UpdateColumn("is_read", true).Error
}
