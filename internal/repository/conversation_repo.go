package repository

import (
	"errors"
	"time"

	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"gorm.io/gorm"
)

// ConversationRepository conversation data access
type ConversationRepository interface {
	Create(conversation *domain.Conversation) error
	FindByID(id string) (*domain.Conversation, error)
	// FindByParticipant returns every conversation the user takes part in,
	// most recently active first.
	FindByParticipant(userID string) ([]*domain.Conversation, error)
	// FindByTriple returns the conversation for an exact (listing, buyer,
	// seller) triple, or nil when none exists.
	FindByTriple(listingID, buyerID, sellerID string) (*domain.Conversation, error)
	TouchUpdatedAt(id string, t time.Time) error
}

type conversationRepository struct {
	db *gorm.DB
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *gorm.DB) ConversationRepository {
	return &conversationRepository{db: db}
}

func (r *conversationRepository) Create(conversation *domain.Conversation) error {
	return r.db.Create(conversation).Error
}

func (r *conversationRepository) FindByID(id string) (*domain.Conversation, error) {
	var conversation domain.Conversation
	if err := r.db.Where("id = ?", id).First(&conversation).Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) FindByParticipant(userID string) ([]*domain.Conversation, error) {
	var conversations []*domain.Conversation
	err := r.db.
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("updated_at DESC").
		Find(&conversations).Error
	return conversations, err
}

func (r *conversationRepository) FindByTriple(listingID, buyerID, sellerID string) (*domain.Conversation, error) {
	var conversation domain.Conversation
	err := r.db.
		Where("listing_id = ? AND buyer_id = ? AND seller_id = ?", listingID, buyerID, sellerID).
		First(&conversation).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &conversation, nil
}

func (r *conversationRepository) TouchUpdatedAt(id string, t time.Time) error {
	return r.db.Model(&domain.Conversation{}).Where("id = ?", id).
		UpdateColumn("updated_at", t).Error
}
