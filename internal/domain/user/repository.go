package user

import "context"

// Repository persists users.
type Repository interface {
	Create(ctx context.Context, u *User) error
	FindByID(ctx context.Context, id uint) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	// FindByIDs resolves a set of user IDs. IDs with no matching user are
	// simply absent from the result; the caller decides whether that is an
	// error.
	FindByIDs(ctx context.Context, ids []uint) ([]*User, error)
}
