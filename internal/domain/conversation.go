package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation is a buyer-seller messaging thread about one listing.
// UpdatedAt is bumped explicitly on every new message; it doubles as the
// recency sort key and the baseline of the unread-count heuristic, so it
// must never be touched by incidental saves (no autoUpdateTime).
type Conversation struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	ListingID string    `gorm:"column:listing_id;type:char(36);not null;uniqueIndex:idx_conversation_triple" json:"listing_id"`
	BuyerID   string    `gorm:"column:buyer_id;type:char(36);not null;uniqueIndex:idx_conversation_triple" json:"buyer_id"`
	SellerID  string    `gorm:"column:seller_id;type:char(36);not null;uniqueIndex:idx_conversation_triple;index" json:"seller_id"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Conversation) TableName() string {
	return "conversations"
}

// BeforeCreate assigns a UUID primary key and seeds UpdatedAt
func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = time.Now().UTC()
	}
	return nil
}

// OtherUserID returns the counterpart of viewerID in this conversation
func (c *Conversation) OtherUserID(viewerID string) string {
	if c.BuyerID == viewerID {
		return c.SellerID
	}
	return c.BuyerID
}

// StartConversationRequest contact-seller payload
type StartConversationRequest struct {
	ListingID string `json:"listing_id" binding:"required,uuid"`
}

// ConversationResponse is a conversation enriched for the inbox list
type ConversationResponse struct {
	ID            string     `json:"id"`
	ListingID     string     `json:"listing_id"`
	BuyerID       string     `json:"buyer_id"`
	SellerID      string     `json:"seller_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ListingTitle  string     `json:"listing_title,omitempty"`
	ListingPrice  float64    `json:"listing_price,omitempty"`
	ListingImages []string   `json:"listing_images,omitempty"`
	OtherUserID   string     `json:"other_user_id"`
	OtherUserName string     `json:"other_user_name"`
	LastMessage   string     `json:"last_message,omitempty"`
	LastMessageAt *time.Time `json:"last_message_at,omitempty"`
	UnreadCount   int        `json:"unread_count"`
}
