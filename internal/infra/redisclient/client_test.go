package redisclient

import (
	"context"
	"testing"
	"time"

	"pixelforge/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RequiresAddress(t *testing.T) {
	client, err := New(nil)
	assert.Error(t, err)
	assert.Nil(t, client)

	client, err = New(&config.RedisConfig{})
	assert.Error(t, err)
	assert.Nil(t, client)
}

func TestNew_AppliesTimeoutDefaults(t *testing.T) {
	client, err := New(&config.RedisConfig{Addr: "localhost:6379", ReadTimeout: 5 * time.Second})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	opts := client.Options()
	assert.Equal(t, defaultIOTimeout, opts.DialTimeout)
	assert.Equal(t, 5*time.Second, opts.ReadTimeout)
	assert.Equal(t, defaultIOTimeout, opts.WriteTimeout)
}

func TestPing(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := New(&config.RedisConfig{Addr: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	require.NoError(t, Ping(context.Background(), client))

	mr.Close()
	assert.Error(t, Ping(context.Background(), client))
}
