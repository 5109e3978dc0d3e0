package memory

import (
	"context"

	"github.com/bnema/together-notify/internal/domain"
	"github.com/bnema/together-notify/internal/ports"
	gocache "github.com/patrickmn/go-cache"
)

// Store keeps snapshots for the lifetime of the process only.
type Store struct {
	cache *gocache.Cache
}

var _ ports.SnapshotStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{cache: gocache.New(gocache.NoExpiration, 0)}
}

func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	value, ok := s.cache.Get(stringKey(key))
	if !ok {
		return "", false, nil
	}
	return value.(string), true, nil
}

func (s *Store) Put(ctx context.Context, key string, value string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Set(stringKey(key), value, gocache.NoExpiration)
	return nil
}

func (s *Store) GetInt(ctx context.Context, key string) (int, error) {
	if err := ctx.Err(); err != nil {
		return domain.NoBucketCount, err
	}

	value, ok := s.cache.Get(intKey(key))
	if !ok {
		return domain.NoBucketCount, nil
	}
	return value.(int), nil
}

func (s *Store) PutInt(ctx context.Context, key string, value int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Set(intKey(key), value, gocache.NoExpiration)
	return nil
}

func stringKey(key string) string { return "s:" + key }
func intKey(key string) string    { return "i:" + key }
