package service

import (
	"time"

	"pixelforge/internal/domain/entity"

	"github.com/google/uuid"
)

// TokenService issues and validates signed bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue signs a token for subject (the user's email) that expires after ttl.
	// Every token gets a unique token ID.
	Issue(subject string, userID uuid.UUID, ttl time.Duration) (*entity.AccessToken, error)

	// Validate verifies the signature and reports expiry. A token with a bad
	// signature or malformed content fails with domainerrors.ErrInvalidSignature;
	// an expired but authentic token returns claims with Expired set.
	Validate(token string) (*entity.TokenClaims, error)

	// AccessTokenTTL returns the configured lifetime of access tokens.
	AccessTokenTTL() time.Duration
}
