package contact_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"messaging-server/internal/domain/contact"
	"messaging-server/internal/domain/user"
	"messaging-server/internal/utils/platformerrors"
)

type MockContactRepository struct {
	CreateFunc      func(ctx context.Context, c *contact.Contact) error
	ListByOwnerFunc func(ctx context.Context, ownerID uint) ([]*contact.Contact, error)
}

func (m *MockContactRepository) Create(ctx context.Context, c *contact.Contact) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *MockContactRepository) ListByOwner(ctx context.Context, ownerID uint) ([]*contact.Contact, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

type MockUserRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*user.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error { return nil }

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, nil
}

func (m *MockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	return nil, nil
}

func TestAddRejectsSelf(t *testing.T) {
	svc := contact.NewService(&MockContactRepository{}, &MockUserRepository{})

	_, err := svc.Add(context.Background(), 1, 1)

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeValidation))
}

func TestAddResolvesSubject(t *testing.T) {
	users := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return &user.User{ID: id, Name: "Ben"}, nil
		},
	}
	svc := contact.NewService(&MockContactRepository{}, users)

	entry, err := svc.Add(context.Background(), 1, 2)

	require.NoError(t, err)
	assert.Equal(t, uint(1), entry.OwnerID)
	assert.Equal(t, uint(2), entry.SubjectID)
	require.NotNil(t, entry.Subject)
	assert.Equal(t, "Ben", entry.Subject.Name)
}

func TestAddUnknownSubjectIsNotFound(t *testing.T) {
	users := &MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, platformerrors.NewError(ctx, platformerrors.LayerRepository,
				platformerrors.ErrorTypeNotFound, "user not found", nil, "user-not-found")
		},
	}
	svc := contact.NewService(&MockContactRepository{}, users)

	_, err := svc.Add(context.Background(), 1, 99)

	require.Error(t, err)
	assert.True(t, platformerrors.IsErrorType(err, platformerrors.ErrorTypeNotFound))
}
