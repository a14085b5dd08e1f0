package ratelimit

import (
	"context"
	"sync"
	"time"

	"gatekeeper/internal/domain/entity"
	"gatekeeper/internal/domain/service"
)

// memoryStore keeps counters in process memory. A single mutex makes every Hit linearizable.
type memoryStore struct {
	mu      sync.Mutex
	entries map[string]*entity.RateLimitEntry
}

// NewMemoryStore creates an in-process counter table.
func NewMemoryStore() service.RateLimitStore {
	return &memoryStore{entries: make(map[string]*entity.RateLimitEntry)}
}

func (s *memoryStore) Hit(_ context.Context, key string, window time.Duration, limit int, now time.Time) (*entity.RateLimitEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	switch {
	case !ok || entry.Expired(now):
		entry = &entity.RateLimitEntry{
			Count:        1,
			WindowStart:  now,
			WindowLength: window,
			Limit:        limit,
		}
		s.entries[key] = entry
	case entry.Count <= limit:
		// Stops at limit+1 so a flood cannot grow the counter.
		entry.Count++
	}

	snapshot := *entry

	return &snapshot, nil
}

func (s *memoryStore) Peek(_ context.Context, key string, _ time.Duration, now time.Time) (*entity.RateLimitEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok || entry.Expired(now) {
		return nil, nil
	}
	snapshot := *entry

	return &snapshot, nil
}

func (s *memoryStore) Reset(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, key)

	return nil
}

// Sweep removes only entries whose window has elapsed.
func (s *memoryStore) Sweep(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, entry := range s.entries {
		if entry.Expired(now) {
			delete(s.entries, key)
			removed++
		}
	}

	return removed, nil
}
