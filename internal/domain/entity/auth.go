// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccessToken is a freshly issued bearer token.
type AccessToken struct {
	Token     string    // The signed JWT handed to the client.
	TokenID   string    // The jti claim, used as the revocation key.
	ExpiresAt time.Time // Absolute expiry of the token.
}

// TokenClaims is the verified content of a bearer token.
type TokenClaims struct {
	Subject   string    // The user's email.
	UserID    uuid.UUID // The user's ID.
	TokenID   string    // The jti claim.
	IssuedAt  time.Time // When the token was issued.
	ExpiresAt time.Time // When the token stops being valid.
	Expired   bool      // True when ExpiresAt is in the past at validation time.
}

// Session identifies the caller of an authenticated request.
type Session struct {
	UserID    uuid.UUID
	Email     string
	TokenID   string
	ExpiresAt time.Time
}
