package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	UserID       uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never JSON-encode
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the outward-facing view of a user: identity fields
// only, no hash and no token list.
type PublicUser struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
}

// Public returns the serializable view of u.
func (u *User) Public() PublicUser {
	return PublicUser{UserID: u.UserID, Email: u.Email}
}

// AccessAuth is the access scope written into session tokens. Only one
// token kind exists today.
const AccessAuth = "auth"
