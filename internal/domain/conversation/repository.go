package conversation

import (
	"context"

	"messaging-server/internal/domain/message"
)

// Repository is the store adapter for conversations and participants.
type Repository interface {
	// Create inserts the conversation with one participant row per entry in
	// Participants. Generated IDs and timestamps are written back.
	Create(ctx context.Context, conv *Conversation) error

	// FindForUser fetches a conversation with its participants, but only
	// when userID is one of them. Absence and non-membership are the same
	// NotFound.
	FindForUser(ctx context.Context, conversationID, userID uint) (*Conversation, error)

	// ListForUser returns up to limit conversations the user participates
	// in, ordered by updated_at, with participants (including user details)
	// and the most recent non-deleted message with author and attachments.
	ListForUser(ctx context.Context, userID uint, descending bool, limit int) ([]*Conversation, error)

	// LatestVisibleMessage returns the newest non-deleted message of a
	// conversation, or nil when there is none. withDetails controls whether
	// the author and attachments are loaded.
	LatestVisibleMessage(ctx context.Context, conversationID uint, withDetails bool) (*message.Message, error)

	// IsParticipant reports whether the (user, conversation) participant
	// pair exists.
	IsParticipant(ctx context.Context, userID, conversationID uint) (bool, error)
}
