package ratelimit

import (
	"context"
	"sync"
	"time"
)

type windowEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryStore keeps fixed-window counters in process memory. Suitable for
// a single instance; swap in RedisStore for multi-instance deployments.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*windowEntry
	now     func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*windowEntry),
		now:     time.Now,
	}
}

// Incr bumps the counter for key, starting a fresh window when the
// previous one has elapsed. Expired entries are replaced lazily.
func (s *MemoryStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	now := s.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		entry = &windowEntry{resetAt: now.Add(window)}
		s.entries[key] = entry
	}
	entry.count++

	return entry.count, entry.resetAt, nil
}
