package contact

import (
	"context"

	"messaging-server/internal/domain/user"
	"messaging-server/internal/utils/platformerrors"
)

// Service maintains a user's contact directory. Contacts are informational
// only: conversation access is governed by participant rows, never by who is
// in whose address book.
type Service struct {
	repo  Repository
	users user.Repository
}

// NewService creates a contact service.
func NewService(repo Repository, users user.Repository) *Service {
	return &Service{
		repo:  repo,
		users: users,
	}
}

// Add records subjectID in the caller's directory.
func (s *Service) Add(ctx context.Context, ownerID, subjectID uint) (*Contact, error) {
	if ownerID == subjectID {
		return nil, platformerrors.NewError(ctx, platformerrors.LayerDomain, platformerrors.ErrorTypeValidation,
			"cannot add yourself as a contact", nil, "contact-self")
	}

	subject, err := s.users.FindByID(ctx, subjectID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "contact user not found")
	}

	c := &Contact{
		OwnerID:   ownerID,
		SubjectID: subjectID,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to add contact")
	}
	c.Subject = subject
	return c, nil
}

// List returns the caller's directory with subject details.
func (s *Service) List(ctx context.Context, ownerID uint) ([]*Contact, error) {
	contacts, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, platformerrors.AsError(ctx, platformerrors.LayerDomain, err, "failed to list contacts")
	}
	return contacts, nil
}
