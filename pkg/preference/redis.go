package preference

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/patkim97/folio/pkg/i18n"
)

// RedisStore keeps the preference of one profile in Redis under
// "<prefix>:<profile>:portfolio-locale-preference". Keys never expire.
type RedisStore struct {
	client redis.UniversalClient
	key    string
}

// NewRedisStore creates a store for profile. An empty prefix is allowed.
func NewRedisStore(client redis.UniversalClient, prefix, profile string) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}
	if profile == "" {
		return nil, ErrEmptyProfile
	}

	key := profile + ":" + Key
	if prefix != "" {
		key = prefix + ":" + key
	}

	return &RedisStore{client: client, key: key}, nil
}

// Key returns the Redis key used by the store.
func (s *RedisStore) Key() string {
	return s.key
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context) (i18n.Locale, error) {
	raw, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", errors.Join(ErrFailedToRead, err)
	}
	return decode(raw)
}

// Set implements Store.
func (s *RedisStore) Set(ctx context.Context, locale i18n.Locale) error {
	if err := validate(locale); err != nil {
		return err
	}
	if err := s.client.Set(ctx, s.key, string(locale), 0).Err(); err != nil {
		return errors.Join(ErrFailedToWrite, err)
	}
	return nil
}
