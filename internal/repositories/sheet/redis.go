package sheet

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	entities "github.com/hearthforge/sheet-api/internal/entities/sheet"
	"github.com/hearthforge/sheet-api/internal/errors"
	redisclient "github.com/hearthforge/sheet-api/internal/redis"
)

const (
	sheetKeyPrefix = "dnd_data_"

	// Error messages
	errCharacterNil  = "character cannot be nil"
	errUsernameEmpty = "username cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis sheet repository.
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

// NewRedis creates a new Redis-backed sheet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Username == "" {
		return nil, errors.InvalidArgument(errUsernameEmpty)
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character data")
	}

	key := sheetKeyPrefix + input.Username
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to save sheet")
	}

	slog.DebugContext(ctx, "saved sheet",
		"username", input.Username,
		"bytes", len(data),
	)

	return &SaveOutput{Character: input.Character}, nil
}

func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Username == "" {
		return nil, errors.InvalidArgument(errUsernameEmpty)
	}

	key := sheetKeyPrefix + input.Username
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no sheet saved for user %s", input.Username)
		}
		return nil, errors.Wrapf(err, "failed to load sheet")
	}

	// Normalization runs on every load so documents written by older
	// versions of the app come back in the current shape.
	char, err := entities.Normalize([]byte(result))
	if err != nil {
		return nil, errors.Wrapf(err, "stored sheet for user %s is corrupt", input.Username)
	}

	return &LoadOutput{Character: char}, nil
}
