package settings

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	redisclient "github.com/The-Night7/bofuri-mj/internal/redis"
)

const settingsKey = "settings"

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis settings repository.
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

// NewRedis creates a new Redis-backed settings repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Settings == nil {
		return nil, errors.InvalidArgument("settings cannot be nil")
	}

	data, err := json.Marshal(input.Settings)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal settings")
	}
	if err := r.client.Set(ctx, settingsKey, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store settings")
	}

	return &SaveOutput{}, nil
}

func (r *redisRepository) Get(ctx context.Context, _ GetInput) (*GetOutput, error) {
	result, err := r.client.Get(ctx, settingsKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("no settings have been saved")
		}
		return nil, errors.Wrapf(err, "failed to get settings")
	}

	var s entities.Settings
	if err := json.Unmarshal([]byte(result), &s); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal settings")
	}

	return &GetOutput{Settings: &s}, nil
}
