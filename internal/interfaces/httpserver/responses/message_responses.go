package responses

import (
	"time"

	"messaging-server/internal/domain/message"
	"messaging-server/internal/domain/user"
	"messaging-server/internal/utils/functional"
)

// UserPayload is the public view of a user. Credentials never leave the
// service.
type UserPayload struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UserFromDomain maps a domain user to its payload.
func UserFromDomain(u *user.User) *UserPayload {
	if u == nil {
		return nil
	}
	return &UserPayload{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
	}
}

// AttachmentPayload is a single file or image attachment.
type AttachmentPayload struct {
	ID       uint   `json:"id"`
	Filepath string `json:"filepath"`
}

// MessagePayload is returned to clients. Deleted messages keep their place in
// the history with deleted_at set.
type MessagePayload struct {
	UUID           string              `json:"uuid"`
	ConversationID uint                `json:"conversation_id"`
	AuthorID       uint                `json:"author_id"`
	Author         *UserPayload        `json:"author,omitempty"`
	Content        string              `json:"content"`
	SendAt         time.Time           `json:"send_at"`
	EditedAt       *time.Time          `json:"edited_at,omitempty"`
	DeletedAt      *time.Time          `json:"deleted_at,omitempty"`
	Files          []AttachmentPayload `json:"files"`
	Images         []AttachmentPayload `json:"images"`
}

// MessageFromDomain maps the domain message to its payload.
func MessageFromDomain(m *message.Message) MessagePayload {
	return MessagePayload{
		UUID:           m.UUID,
		ConversationID: m.ConversationID,
		AuthorID:       m.AuthorID,
		Author:         UserFromDomain(m.Author),
		Content:        m.Content,
		SendAt:         m.SendAt,
		EditedAt:       m.EditedAt,
		DeletedAt:      m.DeletedAt,
		Files:          attachmentsFromDomain(m.Files),
		Images:         attachmentsFromDomain(m.Images),
	}
}

// MessageListResponse wraps a message history page.
type MessageListResponse struct {
	Data []MessagePayload `json:"data"`
}

// MessageListFromDomain maps a message slice to the list response.
func MessageListFromDomain(messages []*message.Message) MessageListResponse {
	return MessageListResponse{Data: functional.Map(messages, MessageFromDomain)}
}

func attachmentsFromDomain(attachments []message.Attachment) []AttachmentPayload {
	return functional.Map(attachments, func(a message.Attachment) AttachmentPayload {
		return AttachmentPayload{ID: a.ID, Filepath: a.Filepath}
	})
}
