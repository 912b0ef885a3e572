package persistence

import (
	"context"
	"time"
)

const revokedKeyPrefix = "revoked_token:"

// TokenRevocations stores logged-out token ids in Redis until their natural
// expiry. With no Redis configured it degrades to a no-op, matching the
// optional-dependency stance taken elsewhere in this package.
type TokenRevocations struct {
	redis *Redis
}

// NewTokenRevocations builds a Redis-backed revocation store.
func NewTokenRevocations(redis *Redis) *TokenRevocations {
	return &TokenRevocations{redis: redis}
}

// Revoke denylists a token id until the given expiry.
func (t *TokenRevocations) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	if t == nil || t.redis == nil || t.redis.Client == nil {
		return nil
	}
	ttl := time.Until(expiresAt)
	if ttl <= 0 {
		// Already expired; the verifier rejects it anyway.
		return nil
	}
	return t.redis.Client.Set(ctx, revokedKeyPrefix+tokenID, "1", ttl).Err()
}

// IsRevoked reports whether a token id has been denylisted.
func (t *TokenRevocations) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if t == nil || t.redis == nil || t.redis.Client == nil {
		return false, nil
	}
	n, err := t.redis.Client.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
