package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Memory keeps pages in process memory with per-entry TTLs. It serves the
// common case of the same listing page being consulted several times in
// one run.
type Memory struct {
	store *gocache.Cache
}

// NewMemory creates a memory cache with the given default TTL.
func NewMemory(defaultTTL time.Duration) *Memory {
	return &Memory{store: gocache.New(defaultTTL, 10*time.Minute)}
}

func (m *Memory) Get(key string) ([]byte, bool) {
	v, found := m.store.Get(key)
	if !found {
		return nil, false
	}
	return v.([]byte), true
}

func (m *Memory) Set(key string, value []byte, ttl time.Duration) error {
	m.store.Set(key, value, ttl)
	return nil
}

func (m *Memory) Delete(key string) error {
	m.store.Delete(key)
	return nil
}

func (m *Memory) Clear() error {
	m.store.Flush()
	return nil
}
