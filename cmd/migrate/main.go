package main

import (
	"flag"
	"log"
	"time"

	"github.com/boilermarket/boilermarket-backend/internal/config"
	"github.com/boilermarket/boilermarket-backend/internal/domain"
	"github.com/boilermarket/boilermarket-backend/internal/migration"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	configPath := flag.String("config", "configs/config.local.yaml", "config file path")
	verbose := flag.Bool("verbose", false, "verbose SQL logging")
	seed := flag.Bool("seed", false, "insert sample data after migrating")
	flag.Parse()

	config.LoadDotEnv()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logLevel := gormlogger.Warn
	if *verbose {
		logLevel = gormlogger.Info
	}

	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	start := time.Now()
	if err := migration.Run(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Printf("Migration completed in %s", time.Since(start))

	if *seed {
		if err := seedSampleData(db); err != nil {
			log.Fatalf("Seed failed: %v", err)
		}
		log.Println("Sample data seeded")
	}
}

// seedSampleData inserts a demo seller and listing for local development.
// Skips if any profile already exists.
func seedSampleData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Profile{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Profiles already exist, skipping seed")
		return nil
	}

	seller := domain.Profile{
		Email:    "seller@purdue.edu",
		Password: "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy", // "password"
		FullName: "Demo Seller",
	}
	if err := db.Create(&seller).Error; err != nil {
		return err
	}

	listing := domain.Listing{
		UserID:         seller.ID,
		Title:          "CS 180 Textbook",
		Description:    "Lightly used, no highlighting.",
		Price:          35,
		Category:       domain.CategoryTextbooks,
		Condition:      domain.ConditionGood,
		PickupLocation: "WALC",
		Images:         "[]",
		IsAvailable:    true,
	}
	return db.Create(&listing).Error
}
