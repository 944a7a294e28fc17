package entities

import (
	"time"

	"messaging-server/internal/domain/message"
)

// Message represents the database schema for messages. Deletion is a soft
// tombstone: DeletedAt is a plain nullable column rather than gorm's soft
// delete type because edit-history reads must still return deleted rows.
type Message struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	UUID           string     `gorm:"type:varchar(36);uniqueIndex;not null"`
	ConversationID uint       `gorm:"index:idx_message_conversation_send_at;not null"`
	AuthorID       uint       `gorm:"index;not null"`
	Content        string     `gorm:"type:text;not null"`
	SendAt         time.Time  `gorm:"index:idx_message_conversation_send_at;not null"`
	EditedAt       *time.Time `gorm:"type:timestamp"`
	DeletedAt      *time.Time `gorm:"type:timestamp;index"`

	Author User    `gorm:"foreignKey:AuthorID"`
	Files  []File  `gorm:"foreignKey:MessageID"`
	Images []Image `gorm:"foreignKey:MessageID"`
}

// TableName specifies the table name for Message.
func (Message) TableName() string {
	return "messages"
}

// File represents a non-image attachment row.
type File struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	MessageID uint   `gorm:"index;not null"`
	Filepath  string `gorm:"type:varchar(1024);not null"`
}

// TableName specifies the table name for File.
func (File) TableName() string {
	return "files"
}

// Image represents an image attachment row.
type Image struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	MessageID uint   `gorm:"index;not null"`
	Filepath  string `gorm:"type:varchar(1024);not null"`
}

// TableName specifies the table name for Image.
func (Image) TableName() string {
	return "images"
}

// NewSchemaMessage converts a domain message to its database schema.
func NewSchemaMessage(m *message.Message) *Message {
	e := &Message{
		ID:             m.ID,
		UUID:           m.UUID,
		ConversationID: m.ConversationID,
		AuthorID:       m.AuthorID,
		Content:        m.Content,
		SendAt:         m.SendAt,
		EditedAt:       m.EditedAt,
		DeletedAt:      m.DeletedAt,
	}
	for _, f := range m.Files {
		e.Files = append(e.Files, File{ID: f.ID, MessageID: f.MessageID, Filepath: f.Filepath})
	}
	for _, img := range m.Images {
		e.Images = append(e.Images, Image{ID: img.ID, MessageID: img.MessageID, Filepath: img.Filepath})
	}
	return e
}

// EtoD converts the database schema to a domain message.
func (e *Message) EtoD() *message.Message {
	m := &message.Message{
		ID:             e.ID,
		UUID:           e.UUID,
		ConversationID: e.ConversationID,
		AuthorID:       e.AuthorID,
		Content:        e.Content,
		SendAt:         e.SendAt,
		EditedAt:       e.EditedAt,
		DeletedAt:      e.DeletedAt,
	}
	if e.Author.ID != 0 {
		m.Author = e.Author.EtoD()
	}
	for _, f := range e.Files {
		m.Files = append(m.Files, message.Attachment{ID: f.ID, MessageID: f.MessageID, Filepath: f.Filepath})
	}
	for _, img := range e.Images {
		m.Images = append(m.Images, message.Attachment{ID: img.ID, MessageID: img.MessageID, Filepath: img.Filepath})
	}
	return m
}
