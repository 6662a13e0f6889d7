package deferred

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/KirkDiggler/voicewatcher/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Sorted set of action IDs scored by due time in unix milliseconds
	dueIndexKey = "deferred:due"

	// Key prefix for the JSON body of each action
	actionKeyPrefix = "deferred:action:"
)

// Config holds configuration for the Redis deferred action repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed deferred action queue
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

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveAction stores the action body and indexes it by due time
func (r *redisRepository) SaveAction(ctx context.Context, input *SaveActionInput) error {
	if input == nil || input.Action == nil {
		return errors.New("input and action cannot be nil")
	}
	if input.Action.ID == "" {
		return errors.New("action ID cannot be empty")
	}

	actionJSON, err := json.Marshal(input.Action)
	if err != nil {
		return fmt.Errorf("failed to marshal deferred action: %w", err)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, actionKeyPrefix+input.Action.ID, actionJSON, 0)
	pipe.ZAdd(ctx, dueIndexKey, redis.Z{
		Score:  float64(input.Action.DueAt.UnixMilli()),
		Member: input.Action.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save deferred action: %w", err)
	}

	return nil
}

// ClaimDue takes ownership of due actions. ZREM returning 1 is the claim, so
// concurrent runners never execute the same action twice. An entry whose body
// cannot be read is dropped and reported in the joined error while the rest of
// the batch is still claimed and returned.
func (r *redisRepository) ClaimDue(ctx context.Context, input *ClaimDueInput) ([]*models.DeferredAction, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.ZRangeByScore(ctx, dueIndexKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(input.Now.UnixMilli(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list due actions: %w", err)
	}

	var claimed []*models.DeferredAction
	var errs []error
	for _, id := range ids {
		removed, err := r.client.ZRem(ctx, dueIndexKey, id).Result()
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to claim deferred action %s: %w", id, err))
			break
		}
		if removed == 0 {
			// another runner got it first
			continue
		}

		action, loadErr := r.loadAction(ctx, id)
		if err := r.client.Del(ctx, actionKeyPrefix+id).Err(); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete deferred action %s: %w", id, err))
		}
		if loadErr != nil {
			errs = append(errs, fmt.Errorf("dropped deferred action %s: %w", id, loadErr))
			continue
		}

		if action != nil {
			claimed = append(claimed, action)
		}
	}

	return claimed, errors.Join(errs...)
}

// ListPending returns every queued action ordered by due time
func (r *redisRepository) ListPending(ctx context.Context, input *ListPendingInput) ([]*models.DeferredAction, error) {
	ids, err := r.client.ZRange(ctx, dueIndexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending actions: %w", err)
	}

	pending := make([]*models.DeferredAction, 0, len(ids))
	for _, id := range ids {
		action, err := r.loadAction(ctx, id)
		if err != nil {
			return nil, err
		}
		if action != nil {
			pending = append(pending, action)
		}
	}

	return pending, nil
}

// loadAction returns nil without error when the body is missing
func (r *redisRepository) loadAction(ctx context.Context, id string) (*models.DeferredAction, error) {
	actionJSON, err := r.client.Get(ctx, actionKeyPrefix+id).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get deferred action: %w", err)
	}

	var action models.DeferredAction
	if err := json.Unmarshal([]byte(actionJSON), &action); err != nil {
		return nil, fmt.Errorf("failed to unmarshal deferred action: %w", err)
	}

	return &action, nil
}
