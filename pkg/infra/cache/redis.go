package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/m-mizutani/commit-timeline/pkg/domain/interfaces"
	"github.com/m-mizutani/commit-timeline/pkg/domain/model"
	"github.com/m-mizutani/commit-timeline/pkg/domain/types"
	"github.com/m-mizutani/commit-timeline/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
	"github.com/redis/go-redis/v9"
)

const (
	DefaultTTL = 5 * time.Minute
	keyPrefix  = "commit-timeline:commits:"
)

// Redis stores aggregated commit lists as JSON with an expiry
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.CommitCache = (*Redis)(nil)

type RedisOption func(*Redis)

func WithTTL(ttl time.Duration) RedisOption {
	return func(x *Redis) {
		x.ttl = ttl
	}
}

type RedisConfig struct {
	Addr     string
	Password string `masq:"secret"`
	DB       int
}

// NewRedis connects to Redis and checks the connection with PING
func NewRedis(ctx context.Context, cfg RedisConfig, options ...RedisOption) (*Redis, error) {
	if cfg.Addr == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "redis address is empty")
	}

	x := &Redis{
		ttl: DefaultTTL,
	}
	for _, opt := range options {
		opt(x)
	}
	if x.ttl <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "cache TTL must be positive", goerr.V("ttl", x.ttl))
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	x.client = client

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		safe.Close(client)
		return nil, goerr.Wrap(err, "failed to connect to redis", goerr.V("addr", cfg.Addr))
	}

	return x, nil
}

// Key builds the cache key of a commit list for the user and time window
func Key(login, email string, window model.TimeWindow) string {
	return fmt.Sprintf("%s%s:%s:%s:%d", keyPrefix, login, email, window.Type, window.Quantity)
}

func (x *Redis) Get(ctx context.Context, key string) ([]*model.Commit, error) {
	raw, err := x.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to get commits from redis", goerr.V("key", key))
	}

	var commits []*model.Commit
	if err := json.Unmarshal(raw, &commits); err != nil {
		return nil, goerr.Wrap(err, "failed to decode cached commits", goerr.V("key", key))
	}
	if commits == nil {
		commits = []*model.Commit{}
	}
	return commits, nil
}

func (x *Redis) Set(ctx context.Context, key string, commits []*model.Commit) error {
	if commits == nil {
		commits = []*model.Commit{}
	}
	raw, err := json.Marshal(commits)
	if err != nil {
		return goerr.Wrap(err, "failed to encode commits", goerr.V("key", key))
	}

	if err := x.client.Set(ctx, key, raw, x.ttl).Err(); err != nil {
		return goerr.Wrap(err, "failed to set commits to redis", goerr.V("key", key))
	}
	return nil
}

func (x *Redis) Close() error {
	return x.client.Close()
}
