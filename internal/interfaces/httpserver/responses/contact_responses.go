package responses

import (
	"time"

	"messaging-server/internal/domain/contact"
	"messaging-server/internal/utils/functional"
)

// ContactPayload is one directory entry with the subject's public details.
type ContactPayload struct {
	ID        uint         `json:"id"`
	SubjectID uint         `json:"subject_id"`
	Subject   *UserPayload `json:"subject,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
}

// ContactFromDomain maps the domain contact to its payload.
func ContactFromDomain(c *contact.Contact) ContactPayload {
	return ContactPayload{
		ID:        c.ID,
		SubjectID: c.SubjectID,
		Subject:   UserFromDomain(c.Subject),
		CreatedAt: c.CreatedAt,
	}
}

// ContactListResponse wraps a contact directory listing.
type ContactListResponse struct {
	Data []ContactPayload `json:"data"`
}

// ContactListFromDomain maps a contact slice to the list response.
func ContactListFromDomain(contacts []*contact.Contact) ContactListResponse {
	return ContactListResponse{Data: functional.Map(contacts, ContactFromDomain)}
}
