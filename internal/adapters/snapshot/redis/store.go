package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
	goredis "github.com/redis/go-redis/v9"
)

const defaultPrefix = "together:"

// Store shares snapshots between hosts through Redis. Keys are stored as
// <prefix>state:<key> and <prefix>count:<key>.
type Store struct {
	client goredis.Cmdable
	prefix string
}

var _ ports.SnapshotStore = (*Store)(nil)

func NewStore(client goredis.Cmdable, prefix string) (*Store, error) {
	if client == nil {
		return nil, errors.New("redis client is nil")
	}

	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}

	return &Store{client: client, prefix: prefix}, nil
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := s.client.Get(ctx, s.stateKey(key)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %q: %w", key, err)
	}

	return value, true, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := s.client.Set(ctx, s.stateKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %q: %w", key, err)
	}
	return nil
}

func (s *Store) GetInt(ctx context.Context, key string) (int, error) {
	value, err := s.client.Get(ctx, s.countKey(key)).Int()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return domain.NoBucketCount, nil
		}
		return domain.NoBucketCount, fmt.Errorf("redis get int %q: %w", key, err)
	}

	return value, nil
}

func (s *Store) PutInt(ctx context.Context, key string, value int) error {
	if err := s.client.Set(ctx, s.countKey(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set int %q: %w", key, err)
	}
	return nil
}

func (s *Store) stateKey(key string) string {
	return s.prefix + "state:" + key
}

func (s *Store) countKey(key string) string {
	return s.prefix + "count:" + key
}
