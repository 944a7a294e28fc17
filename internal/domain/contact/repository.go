package contact

import "context"

// Repository persists contact directory entries.
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	ListByOwner(ctx context.Context, ownerID uint) ([]*Contact, error)
}
