package conversation

import (
	"time"

	"messaging-server/internal/domain/message"
	"messaging-server/internal/domain/user"
)

// ListLimit is the fixed cap on conversations returned by the inbox view.
const ListLimit = 10

// Conversation groups messages between a fixed set of participants.
// UpdatedAt is the recency ranking key: it is bumped whenever a message is
// sent and never rolled back by edits or deletes.
type Conversation struct {
	ID           uint             `json:"id"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
	Participants []Participant    `json:"participants"`
	LastMessage  *message.Message `json:"last_message,omitempty"`
}

// Participant links a user to a conversation. A user appears at most once per
// conversation. IsPinned is caller-local UI state carried through unchanged.
type Participant struct {
	ID             uint       `json:"id"`
	ConversationID uint       `json:"conversation_id"`
	UserID         uint       `json:"user_id"`
	IsPinned       bool       `json:"is_pinned"`
	User           *user.User `json:"user,omitempty"`
}
