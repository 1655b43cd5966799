package repository

import (
	"context"
	"time"
)

// TokenRevocationRepository is the revocation list consulted on every authenticated request.
// Entries are keyed by the token's jti claim and disappear once the token itself has expired.
type TokenRevocationRepository interface {
	// Revoke adds tokenID to the list until expiresAt. It returns false when the
	// token was already revoked or has already expired.
	Revoke(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error)

	// IsRevoked reports whether tokenID is on the list.
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
