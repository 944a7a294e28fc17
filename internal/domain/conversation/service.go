package conversation

import (
	"context"

	"messaging-server/internal/domain/user"
	"messaging-server/internal/utils/platformerrors"
)

// Service handles conversation creation and the inbox view, and acts as the
// access guard for everything scoped to a conversation.
type Service struct {
	repo  Repository
	users user.Repository
}

// NewService creates a conversation service.
func NewService(repo Repository, users user.Repository) *Service {
	return &Service{
		repo:  repo,
		users: users,
	}
}

// Create starts a conversation between the caller and the supplied users. The
// caller is always part of the candidate set. Every id must resolve to an
// existing user and the resolved set needs at least two distinct users.
func (s *Service) Create(ctx context.Context, userID uint, participantIDs []uint) (*Conversation, error) {
	candidates := dedupe(append(participantIDs, userID))
	if len(candidates) < 2 {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"a conversation needs at least two distinct participants", nil, "conv-too-few-participants")
	}

	resolved, err := s.users.FindByIDs(ctx, candidates)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to resolve participants")
	}
	if len(resolved) != len(candidates) {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"participant list contains unknown users", nil, "conv-unknown-participant")
	}

	conv := &Conversation{
		Participants: make([]Participant, len(resolved)),
	}
	for i, u := range resolved {
		conv.Participants[i] = Participant{UserID: u.ID, IsPinned: false}
	}

	if err := s.repo.Create(ctx, conv); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to create conversation")
	}
	return conv, nil
}

// Get returns the conversation with its participants and a preview of the
// most recent non-deleted message. The preview carries neither author details
// nor attachments. Non-participants get NotFound.
func (s *Service) Get(ctx context.Context, userID, conversationID uint) (*Conversation, error) {
	conv, err := s.repo.FindForUser(ctx, conversationID, userID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "conversation not found")
	}

	preview, err := s.repo.LatestVisibleMessage(ctx, conv.ID, false)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to load conversation preview")
	}
	conv.LastMessage = preview

	return conv, nil
}

// List is the inbox view: up to ListLimit conversations the caller
// participates in, ranked by updated_at, each with full participant details
// and one most-recent non-deleted message including author and attachments.
func (s *Service) List(ctx context.Context, userID uint, descending bool) ([]*Conversation, error) {
	conversations, err := s.repo.ListForUser(ctx, userID, descending, ListLimit)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list conversations")
	}
	return conversations, nil
}

// IsParticipant implements the access guard consumed by the message service.
func (s *Service) IsParticipant(ctx context.Context, userID, conversationID uint) (bool, error) {
	return s.repo.IsParticipant(ctx, userID, conversationID)
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
