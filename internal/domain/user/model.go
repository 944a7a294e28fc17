package user

import "time"

// User is an account in the messaging directory. The password is an opaque
// credential carried for the identity provider; this service never verifies
// it.
type User struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
