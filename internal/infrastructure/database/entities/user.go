package entities

import (
	"time"

	"messaging-server/internal/domain/user"
)

// User represents the database schema for registered users.
type User struct {
	ID        uint      `gorm:"primaryKey"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Name     string `gorm:"type:varchar(255);not null"`
	Email    string `gorm:"type:varchar(320);uniqueIndex;not null"`
	Password string `gorm:"type:varchar(255);not null"`
}

// TableName specifies the table name for User.
func (User) TableName() string {
	return "users"
}

// NewSchemaUser converts a domain user to its database schema.
func NewSchemaUser(u *user.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// EtoD converts the database schema to a domain user.
func (e *User) EtoD() *user.User {
	return &user.User{
		ID:        e.ID,
		Name:      e.Name,
		Email:     e.Email,
		Password:  e.Password,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}
