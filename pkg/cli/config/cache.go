package config

import (
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/infra/cache"
	"github.com/m-mizutani/commit-timeline/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

type Cache struct {
	redisAddr     string
	redisPassword string `masq:"secret"`
	redisDB       int64
	ttl           time.Duration
	memory        bool
}

func (x *Cache) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "redis-addr",
			Usage:       "Redis address (host:port) for the commit cache, disabled if empty",
			Category:    "Cache",
			Destination: &x.redisAddr,
			Sources:     cli.EnvVars("TIMELINE_REDIS_ADDR"),
		},
		&cli.StringFlag{
			Name:        "redis-password",
			Usage:       "Redis password",
			Category:    "Cache",
			Destination: &x.redisPassword,
			Sources:     cli.EnvVars("TIMELINE_REDIS_PASSWORD"),
		},
		&cli.Int64Flag{
			Name:        "redis-db",
			Usage:       "Redis database number",
			Category:    "Cache",
			Destination: &x.redisDB,
			Sources:     cli.EnvVars("TIMELINE_REDIS_DB"),
		},
		&cli.DurationFlag{
			Name:        "cache-ttl",
			Usage:       "Lifetime of cached commit lists",
			Category:    "Cache",
			Value:       cache.DefaultTTL,
			Destination: &x.ttl,
			Sources:     cli.EnvVars("TIMELINE_CACHE_TTL"),
		},
		&cli.BoolFlag{
			Name:        "memory-cache",
			Usage:       "Keep commit lists in process memory when Redis is not configured",
			Category:    "Cache",
			Destination: &x.memory,
			Sources:     cli.EnvVars("TIMELINE_MEMORY_CACHE"),
		},
	}
}

// New returns nil without error when no cache is configured. Redis wins over
// the in-memory cache when both are set.
func (x *Cache) New(ctx context.Context) (interfaces.CommitCache, error) {
	if x.redisAddr != "" {
		client, err := cache.NewRedis(ctx, cache.RedisConfig{
			Addr:     x.redisAddr,
			Password: x.redisPassword,
			DB:       int(x.redisDB),
		}, cache.WithTTL(x.ttl))
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	if x.memory {
		return cache.NewMemory(x.ttl), nil
	}

	logging.From(ctx).Info("commit cache is disabled")
	return nil, nil
}

func (x Cache) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("RedisAddr", x.redisAddr),
		slog.Int("RedisPassword.len", len(x.redisPassword)),
		slog.Int64("RedisDB", x.redisDB),
		slog.Duration("TTL", x.ttl),
		slog.Bool("Memory", x.memory),
	)
}
