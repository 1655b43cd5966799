package revocation

import (
	"context"
	"log/slog"
	"time"

	"pixelforge/config"
	"pixelforge/internal/domain/constants"
	"pixelforge/internal/domain/lifecycle"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/infra/redisclient"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultCleanupInterval = time.Minute

// Params holds dependencies for the revocation list, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewStore creates the revocation list selected by revocation.backend.
// An empty backend means redis when a redis address is configured, memory otherwise.
func NewStore(params Params) (repository.TokenRevocationRepository, error) {
	cfg := params.Config.Revocation
	if cfg == nil {
		cfg = &config.RevocationConfig{}
	}
	logger := params.Logger

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}

	backend := cfg.Backend
	if backend == "" {
		backend = constants.RevocationBackendMemory
		if params.Config.Redis != nil && params.Config.Redis.Addr != "" {
			backend = constants.RevocationBackendRedis
		}
	}

	switch backend {
	case constants.RevocationBackendRedis:
		client, err := redisclient.New(params.Config.Redis)
		if err != nil {
			return nil, err
		}
		logger.Info("Using Redis revocation list",
			slog.String("addr", params.Config.Redis.Addr),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return redisclient.Ping(ctx, client)
			},
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisStore(client, cfg.KeyPrefix), nil

	case constants.RevocationBackendMemory:
		store := NewMemoryStore()
		logger.Warn("Using in-memory revocation list; revocations are lost on restart and not shared between instances")

		params.Lc.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				store.Start(cleanupInterval)

				return nil
			},
			OnStop: func(_ context.Context) error {
				store.Stop()

				return nil
			},
		})

		return store, nil

	default:
		return nil, errors.Errorf("unknown revocation backend: %s", backend)
	}
}

// Module provides the revocation list FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
