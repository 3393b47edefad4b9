package players

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"

	redis "github.com/redis/go-redis/v9"

	"github.com/The-Night7/bofuri-mj/internal/entities"
	"github.com/The-Night7/bofuri-mj/internal/errors"
	"github.com/The-Night7/bofuri-mj/internal/pkg/clock"
	redisclient "github.com/The-Night7/bofuri-mj/internal/redis"
)

const (
	playerKeyPrefix = "player:"
	playerIndexKey  = "players"

	errPlayerNil       = "player cannot be nil"
	errPlayerNameEmpty = "player name cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis player repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
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

// NewRedis creates a new Redis-backed player repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{client: cfg.Client, clock: c}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.Name == "" {
		return nil, errors.InvalidArgument(errPlayerNameEmpty)
	}

	key := playerKeyPrefix + input.Player.Name

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists > 0 {
		return nil, errors.AlreadyExistsf("player %q already exists", input.Player.Name)
	}

	input.Player.EnsureCurrent()
	now := r.clock.Now()
	input.Player.CreatedAt = now
	input.Player.UpdatedAt = now
	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, key, data, 0) // roster entries never expire
	pipe.SAdd(ctx, playerIndexKey, input.Player.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to create player")
	}

	return &CreateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errPlayerNameEmpty)
	}

	result, err := r.client.Get(ctx, playerKeyPrefix+input.Name).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %q not found", input.Name)
		}
		return nil, errors.Wrapf(err, "failed to get player")
	}

	var player entities.Player
	if err := json.Unmarshal([]byte(result), &player); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player")
	}

	return &GetOutput{Player: &player}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Player == nil {
		return nil, errors.InvalidArgument(errPlayerNil)
	}
	if input.Player.Name == "" {
		return nil, errors.InvalidArgument(errPlayerNameEmpty)
	}

	key := playerKeyPrefix + input.Player.Name

	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("player %q not found", input.Player.Name)
		}
		return nil, errors.Wrapf(err, "failed to check existence")
	}

	// The creation stamp survives updates regardless of what the
	// caller sends.
	var stored entities.Player
	if err := json.Unmarshal([]byte(result), &stored); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal player")
	}
	input.Player.CreatedAt = stored.CreatedAt
	input.Player.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(input.Player)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal player")
	}
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to update player")
	}

	return &UpdateOutput{Player: input.Player}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Name == "" {
		return nil, errors.InvalidArgument(errPlayerNameEmpty)
	}

	key := playerKeyPrefix + input.Name

	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("player %q not found", input.Name)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, playerIndexKey, input.Name)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete player")
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	names, err := r.client.SMembers(ctx, playerIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read player index")
	}
	sort.Strings(names)

	players := make([]*entities.Player, 0, len(names))
	for _, name := range names {
		out, err := r.Get(ctx, GetInput{Name: name})
		if err != nil {
			// Stale index entries are cleaned up, not fatal.
			if errors.IsNotFound(err) {
				slog.WarnContext(ctx, "player missing, cleaning up index",
					"player", name)
				r.client.SRem(ctx, playerIndexKey, name)
				continue
			}
			return nil, errors.Wrapf(err, "failed to get player %s", name)
		}
		players = append(players, out.Player)
	}

	return &ListOutput{Players: players}, nil
}
