package revocation

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RevokeAndCheck(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	ok, err := store.Revoke(ctx, "jti-1", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, ok)

	revoked, err := store.IsRevoked(ctx, "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)

	ok, err = store.Revoke(ctx, "jti-1", time.Now().Add(time.Minute))
	require.NoError(t, err)
	assert.False(t, ok)

	revoked, err = store.IsRevoked(ctx, "unknown")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestMemoryStore_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	ok, err := store.Revoke(ctx, "expired", now.Add(-time.Second))
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = store.Revoke(ctx, "short", now.Add(time.Minute))
	require.NoError(t, err)
	require.True(t, ok)
	_, err = store.Revoke(ctx, "long", now.Add(time.Hour))
	require.NoError(t, err)

	now = now.Add(2 * time.Minute)

	revoked, err := store.IsRevoked(ctx, "short")
	require.NoError(t, err)
	assert.False(t, revoked)
	assert.Equal(t, 1, store.Len(), "lookup drops the expired entry")

	ok, err = store.Revoke(ctx, "short", now.Add(time.Minute))
	require.NoError(t, err)
	assert.True(t, ok, "an expired entry does not block a new revocation")
}

func TestMemoryStore_Sweep(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, err := store.Revoke(ctx, id, now.Add(time.Minute))
		require.NoError(t, err)
	}
	_, err := store.Revoke(ctx, "d", now.Add(time.Hour))
	require.NoError(t, err)

	now = now.Add(5 * time.Minute)

	assert.Equal(t, 3, store.Sweep())
	assert.Equal(t, 1, store.Len())
}

func TestMemoryStore_JanitorRemovesExpiredEntries(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := store.Revoke(ctx, "soon", time.Now().Add(20*time.Millisecond))
	require.NoError(t, err)

	store.Start(10 * time.Millisecond)
	defer store.Stop()

	assert.Eventually(t, func() bool {
		return store.Len() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestMemoryStore_StopIsIdempotent(t *testing.T) {
	store := NewMemoryStore()
	store.Stop()

	store.Start(time.Millisecond)
	store.Stop()
	store.Stop()
}

func TestMemoryStore_ConcurrentRevokeHasOneWinner(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	exp := time.Now().Add(time.Hour)

	var wins atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ok, _ := store.Revoke(ctx, "race", exp); ok {
				wins.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), wins.Load())
}
