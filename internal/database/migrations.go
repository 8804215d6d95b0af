package database

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"easytax-service/internal/models"
)

// RunMigrations runs all pending database migrations
func RunMigrations(db *gorm.DB) error {
	log.Println("Starting database migrations...")

	modelsToMigrate := []struct {
		name  string
		model interface{}
	}{
		{"ITRReport", &models.ITRReport{}},
		{"GSTReport", &models.GSTReport{}},
		{"FormSnapshot", &models.FormSnapshot{}},
	}
	for _, m := range modelsToMigrate {
		log.Printf("  → Migrating %s...", m.name)
		if err := db.AutoMigrate(m.model); err != nil {
			return fmt.Errorf("failed to auto-migrate %s: %w", m.name, err)
		}
		log.Printf("  ✓ %s migrated", m.name)
	}

	log.Println("✓ All database migrations complete")
	return nil
}
