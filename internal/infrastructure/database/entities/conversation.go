package entities

import (
	"time"

	"messaging-server/internal/domain/conversation"
)

// Conversation represents the database schema for conversations. UpdatedAt
// doubles as the recency marker for inbox ordering: it is bumped to the send
// time of every new message.
type Conversation struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;index"`

	Participants []Participant `gorm:"foreignKey:ConversationID"`
	Messages     []Message     `gorm:"foreignKey:ConversationID"`
}

// TableName specifies the table name for Conversation.
func (Conversation) TableName() string {
	return "conversations"
}

// Participant represents a user's membership in a conversation.
type Participant struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	ConversationID uint `gorm:"uniqueIndex:idx_participant_conversation_user;not null"`
	UserID         uint `gorm:"uniqueIndex:idx_participant_conversation_user;index;not null"`
	IsPinned       bool `gorm:"not null;default:false"`

	User User `gorm:"foreignKey:UserID"`
}

// TableName specifies the table name for Participant.
func (Participant) TableName() string {
	return "participants"
}

// NewSchemaConversation converts a domain conversation to its database schema.
func NewSchemaConversation(c *conversation.Conversation) *Conversation {
	e := &Conversation{
		ID:        c.ID,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
	for _, p := range c.Participants {
		e.Participants = append(e.Participants, Participant{
			ID:             p.ID,
			ConversationID: p.ConversationID,
			UserID:         p.UserID,
			IsPinned:       p.IsPinned,
		})
	}
	return e
}

// EtoD converts the database schema to a domain conversation. The message
// preview is loaded separately by the repository, not through this mapping.
func (e *Conversation) EtoD() *conversation.Conversation {
	c := &conversation.Conversation{
		ID:        e.ID,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	for i := range e.Participants {
		c.Participants = append(c.Participants, *e.Participants[i].EtoD())
	}
	return c
}

// EtoD converts the database schema to a domain participant.
func (e *Participant) EtoD() *conversation.Participant {
	p := &conversation.Participant{
		ID:             e.ID,
		ConversationID: e.ConversationID,
		UserID:         e.UserID,
		IsPinned:       e.IsPinned,
	}
	if e.User.ID != 0 {
		p.User = e.User.EtoD()
	}
	return p
}
