package migration

import (
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"gorm.io/gorm"
)

// Run executes AutoMigrate for all marketplace tables.
// AutoMigrate creates missing tables and adds missing columns/indexes;
// it never drops existing columns, so repeated runs are safe.
func Run(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.Profile{},
		&domain.Listing{},
		&domain.Conversation{},
		&domain.Message{},
	)
}
