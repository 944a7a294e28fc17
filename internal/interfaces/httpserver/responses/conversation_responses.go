package responses

import (
	"time"

	"messaging-server/internal/domain/conversation"
	"messaging-server/internal/utils/functional"
)

// ParticipantPayload is one member of a conversation.
type ParticipantPayload struct {
	ID       uint         `json:"id"`
	UserID   uint         `json:"user_id"`
	IsPinned bool         `json:"is_pinned"`
	User     *UserPayload `json:"user,omitempty"`
}

// ConversationPayload is returned to clients. LastMessage is the newest
// non-deleted message, used as the inbox preview.
type ConversationPayload struct {
	ID           uint                 `json:"id"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
	Participants []ParticipantPayload `json:"participants"`
	LastMessage  *MessagePayload      `json:"last_message,omitempty"`
}

// ConversationFromDomain maps the domain conversation to its payload.
func ConversationFromDomain(c *conversation.Conversation) ConversationPayload {
	participants := make([]ParticipantPayload, 0, len(c.Participants))
	for _, p := range c.Participants {
		participants = append(participants, ParticipantPayload{
			ID:       p.ID,
			UserID:   p.UserID,
			IsPinned: p.IsPinned,
			User:     UserFromDomain(p.User),
		})
	}

	payload := ConversationPayload{
		ID:           c.ID,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
		Participants: participants,
	}
	if c.LastMessage != nil {
		preview := MessageFromDomain(c.LastMessage)
		payload.LastMessage = &preview
	}
	return payload
}

// ConversationListResponse wraps the inbox listing.
type ConversationListResponse struct {
	Data []ConversationPayload `json:"data"`
}

// ConversationListFromDomain maps a conversation slice to the list response.
func ConversationListFromDomain(conversations []*conversation.Conversation) ConversationListResponse {
	return ConversationListResponse{Data: functional.Map(conversations, ConversationFromDomain)}
}
