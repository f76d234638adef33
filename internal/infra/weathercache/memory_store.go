package weathercache

import (
	"context"
	"sync"
	"time"

	"github.com/yanqian/outfitter/internal/domain/weather"
)

type entry struct {
	reading   weather.Reading
	expiresAt time.Time
}

// MemoryStore is an in-process weather cache for tests/dev.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]entry
	now     func() time.Time
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get implements weather.Cache.
func (s *MemoryStore) Get(_ context.Context, key string) (weather.Reading, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		return weather.Reading{}, false, nil
	}
	if !e.expiresAt.IsZero() && !e.expiresAt.After(s.now()) {
		s.mu.Lock()
		delete(s.entries, key)
		s.mu.Unlock()
		return weather.Reading{}, false, nil
	}
	return e.reading, true, nil
}

// Set caches the reading with optional TTL.
func (s *MemoryStore) Set(_ context.Context, key string, reading weather.Reading, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = s.now().Add(ttl)
	}
	s.entries[key] = entry{reading: reading, expiresAt: exp}
	return nil
}

var _ weather.Cache = (*MemoryStore)(nil)
