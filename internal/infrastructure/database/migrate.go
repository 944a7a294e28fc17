package database

import (
	"fmt"

	"gorm.io/gorm"

	"messaging-server/internal/infrastructure/database/entities"
)

// AutoMigrate creates or updates the schema for every persisted entity.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entities.User{},
		&entities.Contact{},
		&entities.Conversation{},
		&entities.Participant{},
		&entities.Message{},
		&entities.File{},
		&entities.Image{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
