package message

import (
	"time"

	"messaging-server/internal/domain/user"
)

// Message is a single entry in a conversation. Its UUID is the stable
// external identity used for edits and deletes; the numeric ID is internal
// to the store.
//
// Lifecycle: active -> edited (repeatable) -> deleted (terminal). Deletion is
// a soft delete: DeletedAt is set once and the row, including attachments,
// is retained.
type Message struct {
	ID             uint         `json:"-"`
	UUID           string       `json:"uuid"`
	ConversationID uint         `json:"conversation_id"`
	AuthorID       uint         `json:"author_id"`
	Content        string       `json:"content"`
	SendAt         time.Time    `json:"send_at"`
	EditedAt       *time.Time   `json:"edited_at,omitempty"`
	DeletedAt      *time.Time   `json:"deleted_at,omitempty"`
	Author         *user.User   `json:"author,omitempty"`
	Files          []Attachment `json:"files"`
	Images         []Attachment `json:"images"`
}

// Attachment references externally stored binary content by filepath. Files
// and images live in separate tables but share this shape.
type Attachment struct {
	ID        uint   `json:"id"`
	MessageID uint   `json:"message_id"`
	Filepath  string `json:"filepath"`
}

// IsDeleted reports whether the message has been soft-deleted.
func (m *Message) IsDeleted() bool {
	return m.DeletedAt != nil
}

// AttachmentDelta is the add/remove set applied to a message's files and
// images during an edit. Additions are filepaths for new rows; deletions are
// attachment ids, applied only when they belong to the edited message.
type AttachmentDelta struct {
	FilesAdd       []string
	FileIDsDelete  []uint
	ImagesAdd      []string
	ImageIDsDelete []uint
}

// Empty reports whether the delta changes nothing.
func (d AttachmentDelta) Empty() bool {
	return len(d.FilesAdd) == 0 && len(d.FileIDsDelete) == 0 &&
		len(d.ImagesAdd) == 0 && len(d.ImageIDsDelete) == 0
}
