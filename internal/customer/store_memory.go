package customer

import (
	"context"
	"sync"

	"aurum/pkg/platform/sentinel"
)

// MemoryStore keeps customers in a map for tests and ephemeral runs.
type MemoryStore struct {
	mu        sync.RWMutex
	customers map[string]Customer
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{customers: make(map[string]Customer)}
}

func (s *MemoryStore) Save(_ context.Context, c Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID.String()] = c
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id string) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.customers[id]; ok {
		return c, nil
	}
	return Customer{}, sentinel.ErrNotFound
}

func (s *MemoryStore) FindByMobile(_ context.Context, mobile string) (Customer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.customers {
		if c.Mobile == mobile {
			return c, nil
		}
	}
	return Customer{}, sentinel.ErrNotFound
}
