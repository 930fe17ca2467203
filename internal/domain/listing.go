package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ListingCategory marketplace category
type ListingCategory string

const (
	CategoryElectronics ListingCategory = "electronics"
	CategoryFurniture   ListingCategory = "furniture"
	CategoryTextbooks   ListingCategory = "textbooks"
	CategoryClothing    ListingCategory = "clothing"
	CategorySublease    ListingCategory = "sublease"
	CategoryOther       ListingCategory = "other"
)

// Valid reports whether the category is one of the known values
func (c ListingCategory) Valid() bool {
	switch c {
	case CategoryElectronics, CategoryFurniture, CategoryTextbooks,
		CategoryClothing, CategorySublease, CategoryOther:
		return true
	}
	return false
}

// ListingCondition item condition. Subleases carry no condition.
type ListingCondition string

const (
	ConditionNew     ListingCondition = "new"
	ConditionLikeNew ListingCondition = "like_new"
	ConditionGood    ListingCondition = "good"
	ConditionFair    ListingCondition = "fair"
	ConditionPoor    ListingCondition = "poor"
)

// MaxListingImages caps images per listing
const MaxListingImages = 5

// Listing is a sellable item or sublease owned by a user
type Listing struct {
	ID             string           `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	UserID         string           `gorm:"column:user_id;type:char(36);not null;index" json:"user_id"`
	Title          string           `gorm:"column:title;size:200;not null" json:"title"`
	Description    string           `gorm:"column:description;type:text" json:"description"`
	Price          float64          `gorm:"column:price;type:decimal(10,2);not null" json:"price"`
	Category       ListingCategory  `gorm:"column:category;size:20;not null;index" json:"category"`
	Condition      ListingCondition `gorm:"column:condition;size:20" json:"condition,omitempty"`
	PickupLocation string           `gorm:"column:pickup_location;size:100" json:"pickup_location"`
	PickupTimeline string           `gorm:"column:pickup_timeline;size:100" json:"pickup_timeline"`
	Images         string           `gorm:"column:images;type:json" json:"-"` // JSON array of URLs
	IsAvailable    bool             `gorm:"column:is_available;default:true;index" json:"is_available"`
	ViewCount      uint             `gorm:"column:view_count;default:0" json:"view_count"`
	CreatedAt      time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	// Relations
	Seller *Profile `gorm:"foreignKey:UserID" json:"seller,omitempty"`
}

func (Listing) TableName() string {
	return "listings"
}

// BeforeCreate assigns a UUID primary key
func (l *Listing) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.New().String()
	}
	return nil
}

// ImageList decodes the stored JSON image array
func (l *Listing) ImageList() []string {
	if l.Images == "" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(l.Images), &images); err != nil {
		return []string{}
	}
	return images
}

// ListingSummary is the projection the conversation list needs
type ListingSummary struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Price  float64 `json:"price"`
	Images string  `json:"-"`
}

// ImageList decodes the stored JSON image array
func (s *ListingSummary) ImageList() []string {
	if s.Images == "" {
		return []string{}
	}
	var images []string
	if err := json.Unmarshal([]byte(s.Images), &images); err != nil {
		return []string{}
	}
	return images
}

// CreateListingRequest listing creation payload
type CreateListingRequest struct {
	Title          string           `json:"title" binding:"required,max=200"`
	Description    string           `json:"description"`
	Price          float64          `json:"price" binding:"gte=0"`
	Category       ListingCategory  `json:"category" binding:"required"`
	Condition      ListingCondition `json:"condition"`
	PickupLocation string           `json:"pickup_location" binding:"max=100"`
	PickupTimeline string           `json:"pickup_timeline" binding:"max=100"`
	Images         []string         `json:"images" binding:"max=5"`
}

// UpdateListingRequest listing edit payload
type UpdateListingRequest struct {
	Title          *string           `json:"title" binding:"omitempty,max=200"`
	Description    *string           `json:"description"`
	Price          *float64          `json:"price" binding:"omitempty,gte=0"`
	Category       *ListingCategory  `json:"category"`
	Condition      *ListingCondition `json:"condition"`
	PickupLocation *string           `json:"pickup_location" binding:"omitempty,max=100"`
	PickupTimeline *string           `json:"pickup_timeline" binding:"omitempty,max=100"`
	Images         []string          `json:"images" binding:"omitempty,max=5"`
	IsAvailable    *bool             `json:"is_available"`
}

// ListingResponse listing detail view
type ListingResponse struct {
	ID             string           `json:"id"`
	UserID         string           `json:"user_id"`
	SellerName     string           `json:"seller_name,omitempty"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	Price          float64          `json:"price"`
	Category       ListingCategory  `json:"category"`
	Condition      ListingCondition `json:"condition,omitempty"`
	PickupLocation string           `json:"pickup_location"`
	PickupTimeline string           `json:"pickup_timeline"`
	Images         []string         `json:"images"`
	IsAvailable    bool             `json:"is_available"`
	ViewCount      uint             `json:"view_count"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// ToResponse converts a Listing to its detail view
func (l *Listing) ToResponse() *ListingResponse {
	resp := &ListingResponse{
		ID:             l.ID,
		UserID:         l.UserID,
		Title:          l.Title,
		Description:    l.Description,
		Price:          l.Price,
		Category:       l.Category,
		Condition:      l.Condition,
		PickupLocation: l.PickupLocation,
		PickupTimeline: l.PickupTimeline,
		Images:         l.ImageList(),
		IsAvailable:    l.IsAvailable,
		ViewCount:      l.ViewCount,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
	if l.Seller != nil {
		resp.SellerName = l.Seller.FullName
	}
	return resp
}
