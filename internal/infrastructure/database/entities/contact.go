package entities

import (
	"time"

	"messaging-server/internal/domain/contact"
)

// Contact represents the database schema for a user's address book entry.
type Contact struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	OwnerID   uint `gorm:"uniqueIndex:idx_contact_owner_subject;not null"`
	SubjectID uint `gorm:"uniqueIndex:idx_contact_owner_subject;not null"`

	Owner   User `gorm:"foreignKey:OwnerID"`
	Subject User `gorm:"foreignKey:SubjectID"`
}

// TableName specifies the table name for Contact.
func (Contact) TableName() string {
	return "contacts"
}

// NewSchemaContact converts a domain contact to its database schema.
func NewSchemaContact(c *contact.Contact) *Contact {
	return &Contact{
		ID:        c.ID,
		OwnerID:   c.OwnerID,
		SubjectID: c.SubjectID,
		CreatedAt: c.CreatedAt,
	}
}

// EtoD converts the database schema to a domain contact.
func (e *Contact) EtoD() *contact.Contact {
	c := &contact.Contact{
		ID:        e.ID,
		OwnerID:   e.OwnerID,
		SubjectID: e.SubjectID,
		CreatedAt: e.CreatedAt,
	}
	if e.Owner.ID != 0 {
		c.Owner = e.Owner.EtoD()
	}
	if e.Subject.ID != 0 {
		c.Subject = e.Subject.EtoD()
	}
	return c
}
