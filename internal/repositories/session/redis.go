package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for active judgment sessions
	sessionKeyPrefix = "julgar:session:"

	// DefaultTTL bounds how long a lock outlives a crashed process
	DefaultTTL = time.Hour
)

// Owner-checked scripts so a flow never touches a lock that expired and was taken by another flow
var (
	refreshScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
end
return 0`)

	releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client

	// TTL applied to every acquired key, DefaultTTL when zero
	TTL time.Duration
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis creates a new Redis-backed session registry
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &redisRepository{
		client: cfg.RedisClient,
		ttl:    ttl,
	}, nil
}

// TryAcquire uses SET NX so the presence check and the insert are one server-side step
func (r *redisRepository) TryAcquire(ctx context.Context, input *TryAcquireInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	acquired, err := r.client.SetNX(ctx, sessionKeyPrefix+input.Key.String(), input.Owner, r.ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire session: %w", err)
	}

	return acquired, nil
}

// Refresh restarts the TTL when input.Owner still holds the key
func (r *redisRepository) Refresh(ctx context.Context, input *RefreshInput) (bool, error) {
	if input == nil {
		return false, errors.New("input cannot be nil")
	}

	refreshed, err := refreshScript.Run(ctx, r.client,
		[]string{sessionKeyPrefix + input.Key.String()},
		input.Owner, r.ttl.Milliseconds()).Int()
	if err != nil {
		return false, fmt.Errorf("failed to refresh session: %w", err)
	}

	return refreshed == 1, nil
}

// Release deletes the session key when input.Owner holds it
func (r *redisRepository) Release(ctx context.Context, input *ReleaseInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	err := releaseScript.Run(ctx, r.client,
		[]string{sessionKeyPrefix + input.Key.String()},
		input.Owner).Err()
	if err != nil {
		return fmt.Errorf("failed to release session: %w", err)
	}

	return nil
}
