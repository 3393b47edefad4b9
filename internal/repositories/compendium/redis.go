package compendium

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	redisclient "github.com/The-Night7/bofuri-mj/internal/redis"
)

const snapshotKey = "compendium:snapshot"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis compendium repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed compendium repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Compendium == nil {
		return nil, errors.InvalidArgument("compendium cannot be nil")
	}

	data, err := json.Marshal(input.Compendium)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal compendium")
	}
	if err := r.client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store compendium")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, snapshotKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no compendium has been imported")
		}
		return nil, errors.Wrapf(err, "failed to get compendium")
	}

	var c entities.Compendium
	if err := json.Unmarshal([]byte(result), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal compendium")
	}

	return &GetOutput{Compendium: &c}, nil
}

func (r *redisRepository) Delete(ctx context.Context, _ DeleteInput) (*DeleteOutput, error) {
	if err := r.client.Del(ctx, snapshotKey).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete compendium")
	}
	return &DeleteOutput{}, nil
}
