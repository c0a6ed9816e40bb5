package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/wealthnest/client-go/models"
)

const (
	accessTokenKey  = "access_token"
	refreshTokenKey = "refresh_token"
)

// Config holds the configuration for the Redis-backed token store.
type Config struct {
	Addr     string
	Password string
	DB       int
	// Prefix namespaces the two token keys, e.g. one prefix per device.
	Prefix string
}

// RedisStore keeps the token pair in Redis so a session can be shared across
// processes (e.g. a headless sync worker next to an interactive client).
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(ctx context.Context, cfg Config) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisStore{client: client, prefix: cfg.Prefix}, nil
}

// NewRedisStoreWithClient wraps an already-connected client, mainly for tests.
func NewRedisStoreWithClient(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) Load(ctx context.Context) (models.Token, error) {
	values, err := s.client.MGet(ctx, s.key(accessTokenKey), s.key(refreshTokenKey)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Token{}, ErrNoToken
		}
		return models.Token{}, err
	}

	var token models.Token
	if v, ok := values[0].(string); ok {
		token.AccessToken = v
	}
	if v, ok := values[1].(string); ok {
		token.RefreshToken = v
	}
	if token.Empty() {
		return models.Token{}, ErrNoToken
	}
	return token, nil
}

func (s *RedisStore) Save(ctx context.Context, token models.Token) error {
	return s.client.MSet(ctx,
		s.key(accessTokenKey), token.AccessToken,
		s.key(refreshTokenKey), token.RefreshToken,
	).Err()
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key(accessTokenKey), s.key(refreshTokenKey)).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + ":" + name
}
