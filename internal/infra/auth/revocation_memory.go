package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"gatekeeper/internal/domain/service"
)

type subjectMarker struct {
	before    time.Time
	expiresAt time.Time
}

// memoryRevocationStore keeps revoked token IDs in process memory.
// Suitable for a single instance; use the Redis store when running several.
type memoryRevocationStore struct {
	mu       sync.Mutex
	clock    service.Clock
	tokens   map[string]time.Time
	subjects map[uuid.UUID]subjectMarker
}

// NewMemoryRevocationStore creates an in-process revocation list.
func NewMemoryRevocationStore(clock service.Clock) service.TokenRevocationStore {
	return &memoryRevocationStore{
		clock:    clock,
		tokens:   make(map[string]time.Time),
		subjects: make(map[uuid.UUID]subjectMarker),
	}
}

func (s *memoryRevocationStore) Revoke(_ context.Context, jti string, until time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if current, ok := s.tokens[jti]; !ok || until.After(current) {
		s.tokens[jti] = until
	}

	return nil
}

func (s *memoryRevocationStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	until, ok := s.tokens[jti]
	if !ok {
		return false, nil
	}

	return s.clock.Now().Before(until), nil
}

func (s *memoryRevocationStore) RevokeSubject(_ context.Context, subjectID uuid.UUID, before time.Time, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	expiresAt := s.clock.Now().Add(ttl)
	if current, ok := s.subjects[subjectID]; ok && current.before.After(before) {
		before = current.before
	}
	s.subjects[subjectID] = subjectMarker{before: before, expiresAt: expiresAt}

	return nil
}

func (s *memoryRevocationStore) SubjectRevokedBefore(_ context.Context, subjectID uuid.UUID) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	marker, ok := s.subjects[subjectID]
	if !ok || !s.clock.Now().Before(marker.expiresAt) {
		return time.Time{}, false, nil
	}

	return marker.before, true, nil
}

func (s *memoryRevocationStore) Sweep(_ context.Context, now time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for jti, until := range s.tokens {
		if !now.Before(until) {
			delete(s.tokens, jti)
			removed++
		}
	}
	for subjectID, marker := range s.subjects {
		if !now.Before(marker.expiresAt) {
			delete(s.subjects, subjectID)
			removed++
		}
	}

	return removed, nil
}
