package session

import (
	"context"
	"sync"
	"time"

	"aurum/pkg/platform/sentinel"
)

// MemoryStore is the fallback DraftStore for runs without Redis. Entries
// expire lazily on Load.
type MemoryStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	drafts map[string]memoryDraft
}

type memoryDraft struct {
	draft    Draft
	deadline time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{ttl: ttl, drafts: make(map[string]memoryDraft)}
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, d Draft) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[sessionID] = memoryDraft{draft: d, deadline: time.Now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.drafts[sessionID]
	if !ok {
		return Draft{}, sentinel.ErrNotFound
	}
	if time.Now().After(entry.deadline) {
		delete(s.drafts, sessionID)
		return Draft{}, sentinel.ErrNotFound
	}
	return entry.draft, nil
}

func (s *MemoryStore) Clear(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
	return nil
}
