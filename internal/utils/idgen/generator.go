package idgen

import (
	"github.com/google/uuid"
)

// NewMessageUUID returns the stable external identity for a message. Messages
// are addressed by this value in the API; the numeric primary key never
// leaves the store.
func NewMessageUUID() string {
	return uuid.NewString()
}
