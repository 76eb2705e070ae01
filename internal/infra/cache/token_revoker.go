// Package cache holds the token revocation list, in Redis when configured
// and in process memory otherwise.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cardportal/config"
	"cardportal/internal/domain/lifecycle"
	"cardportal/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

const defaultKeyPrefix = "cardportal:revoked:"

// redisClient is the subset of *redis.Client the revoker uses.
type redisClient interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

type redisRevoker struct {
	client redisClient
	prefix string
	now    func() time.Time
}

// RevokerParams holds dependencies for the TokenRevoker, injected by Fx.
type RevokerParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenRevoker returns a Redis-backed revoker when redis.enabled is set
// and an in-memory one otherwise. The in-memory list is per process.
func NewTokenRevoker(params RevokerParams) (service.TokenRevoker, error) {
	cfg := params.Config.Redis
	if cfg == nil || !cfg.Enabled {
		params.Logger.Info("Redis not configured, using in-memory token revocation")

		return NewMemoryRevoker(), nil
	}

	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}
	client := redis.NewClient(opt)

	params.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			pingCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := client.Ping(pingCtx).Err(); err != nil {
				return errors.Wrap(err, "ping redis")
			}
			params.Logger.Info("Redis connection established", slog.String("addr", opt.Addr))

			return nil
		},
		OnStop: func(context.Context) error {
			return errors.WithStack(client.Close())
		},
	})

	return NewRedisRevoker(client, cfg.KeyPrefix), nil
}

// NewRedisRevoker stores revoked token IDs as keys that expire with the token.
func NewRedisRevoker(client redisClient, prefix string) service.TokenRevoker {
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRevoker{client: client, prefix: prefix, now: time.Now}
}

func (r *redisRevoker) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(r.now())
	if ttl <= 0 {
		return nil
	}

	return errors.Wrap(r.client.Set(ctx, r.prefix+tokenID, 1, ttl).Err(), "revoke token")
}

func (r *redisRevoker) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, r.prefix+tokenID).Result()
	if err != nil {
		return false, errors.Wrap(err, "check token revocation")
	}

	return n > 0, nil
}

type memoryRevoker struct {
	mu      sync.Mutex
	revoked map[string]time.Time
	now     func() time.Time
}

// NewMemoryRevoker keeps revoked token IDs in a map, pruned lazily.
func NewMemoryRevoker() service.TokenRevoker {
	return &memoryRevoker{revoked: make(map[string]time.Time), now: time.Now}
}

func (r *memoryRevoker) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for id, exp := range r.revoked {
		if !exp.After(now) {
			delete(r.revoked, id)
		}
	}
	if expiresAt.After(now) {
		r.revoked[tokenID] = expiresAt
	}

	return nil
}

func (r *memoryRevoker) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	exp, ok := r.revoked[tokenID]

	return ok && exp.After(r.now()), nil
}
