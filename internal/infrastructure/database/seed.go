package database

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"messaging-server/internal/infrastructure/database/entities"
	"messaging-server/internal/utils/idgen"
)

// SeedDemoData inserts a small demo dataset: three users, two contacts and
// two conversations with a handful of messages. It is idempotent, keyed on
// the first demo user's email, so restarting the server never duplicates
// rows.
func SeedDemoData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.User{}).Where("email = ?", "adam@gmail.com").Count(&count).Error; err != nil {
		return fmt.Errorf("check seed marker: %w", err)
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		users := []entities.User{
			{Name: "Adam", Email: "adam@gmail.com", Password: "heslo"},
			{Name: "Ben", Email: "ben@gmail.com", Password: "heslo"},
			{Name: "Cyril", Email: "cyril@gmail.com", Password: "heslo"},
		}
		if err := tx.Create(&users).Error; err != nil {
			return fmt.Errorf("seed users: %w", err)
		}

		contacts := []entities.Contact{
			{OwnerID: users[0].ID, SubjectID: users[1].ID},
			{OwnerID: users[0].ID, SubjectID: users[2].ID},
		}
		if err := tx.Create(&contacts).Error; err != nil {
			return fmt.Errorf("seed contacts: %w", err)
		}

		conversations := []entities.Conversation{
			{Participants: []entities.Participant{{UserID: users[0].ID}, {UserID: users[1].ID}}},
			{Participants: []entities.Participant{{UserID: users[0].ID}, {UserID: users[2].ID}}},
		}
		if err := tx.Create(&conversations).Error; err != nil {
			return fmt.Errorf("seed conversations: %w", err)
		}

		now := time.Now().UTC()
		messages := []entities.Message{
			{UUID: idgen.NewMessageUUID(), ConversationID: conversations[0].ID, AuthorID: users[0].ID, Content: "test message 1", SendAt: now.Add(-5 * time.Minute)},
			{UUID: idgen.NewMessageUUID(), ConversationID: conversations[0].ID, AuthorID: users[1].ID, Content: "test message 2", SendAt: now.Add(-4 * time.Minute)},
			{UUID: idgen.NewMessageUUID(), ConversationID: conversations[0].ID, AuthorID: users[0].ID, Content: "test message 3", SendAt: now.Add(-3 * time.Minute)},
			{UUID: idgen.NewMessageUUID(), ConversationID: conversations[1].ID, AuthorID: users[0].ID, Content: "test message 4", SendAt: now.Add(-2 * time.Minute)},
			{UUID: idgen.NewMessageUUID(), ConversationID: conversations[1].ID, AuthorID: users[2].ID, Content: "test message 5", SendAt: now.Add(-time.Minute)},
			{UUID: idgen.NewMessageUUID(), ConversationID: conversations[1].ID, AuthorID: users[0].ID, Content: "test message 6", SendAt: now},
		}
		if err := tx.Create(&messages).Error; err != nil {
			return fmt.Errorf("seed messages: %w", err)
		}

		for _, m := range messages {
			if err := tx.Model(&entities.Conversation{}).
				Where("id = ? AND updated_at < ?", m.ConversationID, m.SendAt).
				Update("updated_at", m.SendAt).Error; err != nil {
				return fmt.Errorf("seed conversation recency: %w", err)
			}
		}
		return nil
	})
}
