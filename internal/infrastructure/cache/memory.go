package cache

import (
	"context"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryStore хранит записи в памяти процесса без истечения.
type MemoryStore struct {
	items *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		items: gocache.New(gocache.NoExpiration, 0),
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	v, ok := s.items.Get(key)
	if !ok {
		return "", errNotFound()
	}

	str, _ := v.(string)

	return str, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.items.Set(key, value, gocache.NoExpiration)

	return nil
}
