// internal/domain/user.go
package domain

import "time"

// User represents a registered account in the expense tracker.
// PasswordHash is write-only: it is never serialized into API responses.
type User struct {
	ID           int64     `db:"id" json:"id"`           // Primary key, BIGSERIAL in DB
	Name         string    `db:"name" json:"name"`       // Display name
	Email        string    `db:"email" json:"email"`     // Unique login key
	PasswordHash string    `db:"password_hash" json:"-"` // bcrypt hash, excluded from JSON
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt    time.Time `db:"updated_at" json:"updatedAt"`
}

// NewUser creates a new User instance with an already-hashed password.
func NewUser(name, email, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
