package revocation

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"pixelforge/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newProviderConfig(backend string) *config.Config {
	return &config.Config{
		Revocation: &config.RevocationConfig{
			Backend:         backend,
			KeyPrefix:       "test:",
			CleanupInterval: time.Minute,
		},
	}
}

func TestNewStore_Memory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	store, err := NewStore(Params{Lc: lc, Config: newProviderConfig("memory"), Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewStore_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := newProviderConfig("redis")
	cfg.Redis = &config.RedisConfig{Addr: mr.Addr()}

	lc := fxtest.NewLifecycle(t)
	store, err := NewStore(Params{Lc: lc, Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &redisStore{}, store)

	lc.RequireStart()
	lc.RequireStop()
}

func TestNewStore_DefaultsFollowRedisConfig(t *testing.T) {
	cfg := newProviderConfig("")
	store, err := NewStore(Params{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	cfg.Redis = &config.RedisConfig{Addr: "localhost:6379"}
	store, err = NewStore(Params{Lc: fxtest.NewLifecycle(t), Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &redisStore{}, store)
}

func TestNewStore_Errors(t *testing.T) {
	_, err := NewStore(Params{Lc: fxtest.NewLifecycle(t), Config: newProviderConfig("etcd"), Logger: newDiscardLogger()})
	assert.ErrorContains(t, err, "unknown revocation backend")

	_, err = NewStore(Params{Lc: fxtest.NewLifecycle(t), Config: newProviderConfig("redis"), Logger: newDiscardLogger()})
	assert.ErrorContains(t, err, "redis address is required")
}

func TestNewStore_MissingSectionFallsBackToMemory(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	store, err := NewStore(Params{Lc: lc, Config: &config.Config{}, Logger: newDiscardLogger()})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	lc.RequireStart()
	lc.RequireStop()
}
