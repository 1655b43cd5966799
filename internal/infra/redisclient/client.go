// Package redisclient builds the go-redis client shared by Redis-backed stores.
package redisclient

import (
	"context"
	"time"

	"pixelforge/config"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const defaultIOTimeout = 2 * time.Second

// New creates a client from cfg without connecting. Zero timeouts fall back to two seconds.
func New(cfg *config.RedisConfig) (*redis.Client, error) {
	if cfg == nil || cfg.Addr == "" {
		return nil, errors.New("redis address is required")
	}

	return redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		DialTimeout:  orDefault(cfg.DialTimeout),
		ReadTimeout:  orDefault(cfg.ReadTimeout),
		WriteTimeout: orDefault(cfg.WriteTimeout),
	}), nil
}

// Ping checks connectivity.
func Ping(ctx context.Context, client *redis.Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.Wrap(err, "failed to ping redis")
	}

	return nil
}

func orDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return defaultIOTimeout
	}

	return d
}
