package rediskv

import (
	"context"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"github.com/baseldt/lms/storage/kv"
)

// Redis key prefix for session entries
const keyPrefix = "lms:kv:"

type store struct {
	client *redis.Client
}

var _ kv.Store = (*store)(nil)

func NewStore(client *redis.Client) kv.Store {
	return &store{client: client}
}

// Open connects to redis and checks the connection.
func Open(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "pinging redis")
	}
	return client, nil
}

func (s *store) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, kv.ErrNotFound
		}
		return nil, errors.Wrapf(err, "getting %q", key)
	}
	return val, nil
}

func (s *store) Set(ctx context.Context, key string, value []byte) error {
	// no expiry: the entry lives until logout
	return errors.Wrapf(s.client.Set(ctx, keyPrefix+key, value, 0).Err(), "setting %q", key)
}

func (s *store) Delete(ctx context.Context, key string) error {
	return errors.Wrapf(s.client.Del(ctx, keyPrefix+key).Err(), "deleting %q", key)
}
