package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Without a configured Redis client the store degrades to a no-op: nothing is
// ever reported revoked and Revoke never fails.
func TestTokenRevocations_NoRedis(t *testing.T) {
	for _, store := range []*TokenRevocations{
		nil,
		NewTokenRevocations(nil),
		NewTokenRevocations(&Redis{}),
	} {
		require.NoError(t, store.Revoke(context.Background(), "jti-1", time.Now().Add(time.Hour)))

		revoked, err := store.IsRevoked(context.Background(), "jti-1")
		require.NoError(t, err)
		assert.False(t, revoked)
	}
}
