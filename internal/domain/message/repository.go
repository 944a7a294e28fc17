package message

import (
	"context"
	"time"
)

// Repository is the store adapter for messages and their attachments.
type Repository interface {
	// Create inserts the message with its attachment rows and bumps the
	// parent conversation's updated_at to the message's send time, all in
	// one transaction. The message's generated IDs and SendAt are written
	// back.
	Create(ctx context.Context, m *Message) error

	// FindByUUID fetches a message with attachments by its external UUID,
	// scoped to the given conversation. Soft-deleted messages are found too.
	FindByUUID(ctx context.Context, conversationID uint, messageUUID string) (*Message, error)

	// ListByConversation returns all messages of a conversation, newest
	// first, each with attachments, optionally filtered to one author.
	// Soft-deleted messages are included: the history view is unfiltered.
	ListByConversation(ctx context.Context, conversationID uint, authorID *uint) ([]*Message, error)

	// ApplyEdit replaces the message content, marks editedAt, and applies
	// the attachment delta as a single atomic unit. Deletions only touch
	// attachments belonging to the message. Returns the reloaded message.
	ApplyEdit(ctx context.Context, m *Message, delta AttachmentDelta) (*Message, error)

	// MarkDeleted sets deleted_at on the message row. The row and its
	// attachments are retained.
	MarkDeleted(ctx context.Context, messageID uint, at time.Time) error
}

// ParticipantChecker gates conversation access. Implemented by the
// conversation service.
type ParticipantChecker interface {
	IsParticipant(ctx context.Context, userID, conversationID uint) (bool, error)
}
