package contact

import (
	"time"

	"messaging-server/internal/domain/user"
)

// Contact is a directed owner -> subject relation between two users. It is an
// informational directory entry only; conversations are the authoritative
// grouping for messages. (Historic seed data reused contact ids as
// conversation ids, which this model deliberately does not.)
type Contact struct {
	ID        uint       `json:"id"`
	OwnerID   uint       `json:"owner_id"`
	SubjectID uint       `json:"subject_id"`
	Owner     *user.User `json:"owner,omitempty"`
	Subject   *user.User `json:"subject,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
