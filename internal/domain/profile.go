package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is a registered user of the marketplace
type Profile struct {
	ID        string    `gorm:"column:id;type:char(36);primaryKey" json:"id"`
	Email     string    `gorm:"column:email;size:255;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"column:password;size:100;not null" json:"-"`
	FullName  string    `gorm:"column:full_name;size:100;not null" json:"full_name"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// BeforeCreate assigns a UUID primary key
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// ProfileName is a minimal projection for bulk display-name lookups
type ProfileName struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
}

// RegisterRequest signup payload
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	FullName string `json:"full_name" binding:"max=100"`
}

// LoginRequest login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest token refresh payload
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is returned on successful login/refresh
type TokenResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	User         *ProfileResponse `json:"user,omitempty"`
}

// ProfileResponse public profile view
type ProfileResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ToResponse converts a Profile to its public view
func (p *Profile) ToResponse() *ProfileResponse {
	return &ProfileResponse{
		ID:        p.ID,
		Email:     p.Email,
		FullName:  p.FullName,
		CreatedAt: p.CreatedAt,
	}
}

// UpdateProfileRequest profile edit payload
type UpdateProfileRequest struct {
	FullName *string `json:"full_name" binding:"omitempty,max=100"`
}
