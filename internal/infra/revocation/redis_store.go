// Package revocation implements the logout revocation list.
package revocation

import (
	"context"
	"time"

	"pixelforge/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStore keeps one key per revoked token ID, expiring together with the token.
type redisStore struct {
	client *redis.Client
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a Redis-backed revocation list.
func NewRedisStore(client *redis.Client, prefix string) repository.TokenRevocationRepository {
	return &redisStore{client: client, prefix: prefix, now: time.Now}
}

// Revoke uses SET NX so that only the first of concurrent logouts succeeds.
func (s *redisStore) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) (bool, error) {
	ttl := expiresAt.Sub(s.now())
	if ttl <= 0 {
		return false, nil
	}

	ok, err := s.client.SetNX(ctx, s.prefix+tokenID, "1", ttl).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to revoke token")
	}

	return ok, nil
}

// IsRevoked reports whether the token ID is on the list.
func (s *redisStore) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.prefix+tokenID).Result()
	if err != nil {
		return false, errors.Wrap(err, "failed to check token revocation")
	}

	return n > 0, nil
}
