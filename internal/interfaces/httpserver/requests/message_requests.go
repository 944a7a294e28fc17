package requests

import "messaging-server/internal/utils/functional"

// AttachmentInput names a stored file to attach.
type AttachmentInput struct {
	Filepath string `json:"filepath" binding:"required"`
}

// SendMessageRequest creates a message. Content is a pointer so an empty
// string still binds; messages with only attachments are allowed.
type SendMessageRequest struct {
	Content *string           `json:"content" binding:"required"`
	Files   []AttachmentInput `json:"files" binding:"omitempty,dive"`
	Images  []AttachmentInput `json:"images" binding:"omitempty,dive"`
}

// AttachmentDeltaRequest adds new attachments and removes existing ones by
// ID in the same edit.
type AttachmentDeltaRequest struct {
	Add    []AttachmentInput `json:"add" binding:"omitempty,dive"`
	Delete []uint            `json:"delete"`
}

// EditMessageRequest replaces the content of a message and applies attachment
// changes atomically with it.
type EditMessageRequest struct {
	Content *string                 `json:"content" binding:"required"`
	Files   *AttachmentDeltaRequest `json:"files"`
	Images  *AttachmentDeltaRequest `json:"images"`
}

// ListMessagesQuery optionally narrows the history to one author.
type ListMessagesQuery struct {
	AuthorID *uint `form:"author_id" binding:"omitempty,min=1"`
}

// Filepaths flattens attachment inputs to their paths.
func Filepaths(inputs []AttachmentInput) []string {
	return functional.Map(inputs, func(in AttachmentInput) string { return in.Filepath })
}
