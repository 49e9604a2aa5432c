package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account entity used for authentication and as the
// owner of uploaded files.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUIDv7).
	ID uuid.UUID `json:"id"`

	// Username is the display name of the user.
	Username string `json:"username"`

	// Email is globally unique and used as the login identifier and as the
	// recipient address of share links.
	Email string `json:"email"`

	// PasswordHash stores the argon2id hash of the account password in PHC
	// format. Never plaintext, never serialized.
	PasswordHash string `json:"-"`

	// PublicKey is an optional key reserved for asymmetric sharing.
	PublicKey *string `json:"public_key,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last profile change.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
