package users

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/hearthforge/sheet-api/internal/errors"
	"github.com/hearthforge/sheet-api/internal/pkg/clock"
	redisclient "github.com/hearthforge/sheet-api/internal/redis"
)

const (
	userKeyPrefix = "user:"

	// Error messages
	errUserNil       = "user cannot be nil"
	errUsernameEmpty = "username cannot be empty"
	errHashEmpty     = "password hash cannot be empty"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis users repository.
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

// NewRedis creates a new Redis-backed users repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.User == nil {
		return nil, errors.InvalidArgument(errUserNil)
	}
	if input.User.Username == "" {
		return nil, errors.InvalidArgument(errUsernameEmpty)
	}
	if input.User.PasswordHash == "" {
		return nil, errors.InvalidArgument(errHashEmpty)
	}

	user := *input.User
	if user.CreatedAt == 0 {
		user.CreatedAt = r.clock.Now().Unix()
	}

	data, err := json.Marshal(&user)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal user")
	}

	// SetNX keeps the registration race-free: the first writer wins and
	// everyone else sees AlreadyExists.
	key := userKeyPrefix + user.Username
	ok, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create user")
	}
	if !ok {
		return nil, errors.AlreadyExistsf("username %s is taken", user.Username)
	}

	slog.DebugContext(ctx, "created user", "username", user.Username)

	return &CreateOutput{User: &user}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Username == "" {
		return nil, errors.InvalidArgument(errUsernameEmpty)
	}

	key := userKeyPrefix + input.Username
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("user %s not found", input.Username)
		}
		return nil, errors.Wrapf(err, "failed to get user")
	}

	var user User
	if err := json.Unmarshal([]byte(result), &user); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal user")
	}

	return &GetOutput{User: &user}, nil
}
