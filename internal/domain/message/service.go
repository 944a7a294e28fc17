package message

import (
	"context"
	"time"

	"messaging-server/internal/utils/idgen"
	"messaging-server/internal/utils/platformerrors"
)

// Service handles the message lifecycle inside authorized conversations.
//
// Every operation first passes the participant guard. Failed guards and
// absent entities both surface as NotFound so existence never leaks to
// outsiders; for edit and delete the same applies to author mismatches.
type Service struct {
	repo  Repository
	guard ParticipantChecker
}

// NewService creates a message service.
func NewService(repo Repository, guard ParticipantChecker) *Service {
	return &Service{
		repo:  repo,
		guard: guard,
	}
}

// SendInput carries the validated arguments for Send.
type SendInput struct {
	Content string
	Files   []string
	Images  []string
}

// EditInput carries the validated arguments for Edit.
type EditInput struct {
	Content string
	Delta   AttachmentDelta
}

// List returns the full message history of a conversation, newest first,
// optionally filtered to a single author. Soft-deleted messages are included;
// only conversation previews hide them.
func (s *Service) List(ctx context.Context, userID, conversationID uint, authorID *uint) ([]*Message, error) {
	if err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	messages, err := s.repo.ListByConversation(ctx, conversationID, authorID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list messages")
	}
	return messages, nil
}

// Send creates a message authored by the caller, together with its attachment
// rows, and re-ranks the conversation by bumping its updated_at.
func (s *Service) Send(ctx context.Context, userID, conversationID uint, input SendInput) (*Message, error) {
	if err := s.requireParticipant(ctx, userID, conversationID); err != nil {
		return nil, err
	}

	msg := &Message{
		UUID:           idgen.NewMessageUUID(),
		ConversationID: conversationID,
		AuthorID:       userID,
		Content:        input.Content,
		SendAt:         time.Now().UTC(),
		Files:          attachmentsFromPaths(input.Files),
		Images:         attachmentsFromPaths(input.Images),
	}

	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create message")
	}
	return msg, nil
}

// Edit replaces the message content and applies the attachment delta in one
// atomic unit. Only the author may edit; a mismatch is indistinguishable from
// an absent message. EditedAt is set even when nothing actually changed.
func (s *Service) Edit(ctx context.Context, userID, conversationID uint, messageUUID string, input EditInput) (*Message, error) {
	msg, err := s.findOwned(ctx, userID, conversationID, messageUUID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	msg.Content = input.Content
	msg.EditedAt = &now

	updated, err := s.repo.ApplyEdit(ctx, msg, input.Delta)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to edit message")
	}
	return updated, nil
}

// Delete soft-deletes the caller's message. Repeating the call on an already
// deleted message is a no-op success: the original deletion timestamp stands.
func (s *Service) Delete(ctx context.Context, userID, conversationID uint, messageUUID string) (*Message, error) {
	msg, err := s.findOwned(ctx, userID, conversationID, messageUUID)
	if err != nil {
		return nil, err
	}

	if !msg.IsDeleted() {
		now := time.Now().UTC()
		if err := s.repo.MarkDeleted(ctx, msg.ID, now); err != nil {
			return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to delete message")
		}
		msg.DeletedAt = &now
	}
	return msg, nil
}

func (s *Service) requireParticipant(ctx context.Context, userID, conversationID uint) error {
	ok, err := s.guard.IsParticipant(ctx, userID, conversationID)
	if err != nil {
		return platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to check conversation access")
	}
	if !ok {
		return platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"conversation not found", nil, "msg-conversation-access")
	}
	return nil
}

// findOwned resolves a message the caller authored. Absence, wrong
// conversation and wrong author all produce the same NotFound.
func (s *Service) findOwned(ctx context.Context, userID, conversationID uint, messageUUID string) (*Message, error) {
	msg, err := s.repo.FindByUUID(ctx, conversationID, messageUUID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "message not found")
	}
	if msg.AuthorID != userID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeNotFound,
			"message not found", nil, "msg-author-mismatch")
	}
	return msg, nil
}

func attachmentsFromPaths(paths []string) []Attachment {
	attachments := make([]Attachment, len(paths))
	for i, path := range paths {
		attachments[i] = Attachment{Filepath: path}
	}
	return attachments
}
