// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can log in, hold a subscription and own images.
type User struct {
	ID           uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email        string    // Login identifier; unique, matched exactly (case-sensitive).
	Username     string    // Display name chosen at registration.
	PasswordHash string    // bcrypt hash; the plaintext is never stored.
	Role         string    // Plan tag in canonical upper case, e.g. "FREE" or "MONTHLY".
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

// UserUpdate lists the columns of a partial profile update. Nil fields are left untouched.
type UserUpdate struct {
	Email        *string
	PasswordHash *string
	Role         *string
}

// IsEmpty reports whether the update carries no fields.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.PasswordHash == nil && u.Role == nil
}

// FieldNames returns the names of the fields being changed, for auditing.
func (u UserUpdate) FieldNames() []string {
	names := make([]string, 0, 3)
	if u.Email != nil {
		names = append(names, "email")
	}
	if u.PasswordHash != nil {
		names = append(names, "password")
	}
	if u.Role != nil {
		names = append(names, "role")
	}

	return names
}
