package application

import (
	"context"
	"sync"

	"aurum/pkg/domain"
	"aurum/pkg/platform/sentinel"
)

// MemoryStore is an in-memory Store for tests.
type MemoryStore struct {
	mu    sync.Mutex
	apps  map[domain.ApplicationID]Application
	order []domain.ApplicationID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{apps: make(map[domain.ApplicationID]Application)}
}

func (s *MemoryStore) Create(_ context.Context, app Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.apps[app.ID]; !ok {
		s.order = append(s.order, app.ID)
	}
	s.apps[app.ID] = app
	return nil
}

func (s *MemoryStore) FindByID(_ context.Context, id domain.ApplicationID) (Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return Application{}, sentinel.ErrNotFound
	}
	return app, nil
}

func (s *MemoryStore) ListByCustomer(_ context.Context, id domain.CustomerID) ([]Application, error) {
	return s.list(func(app Application) bool { return app.CustomerID == id }), nil
}

func (s *MemoryStore) ListPending(_ context.Context) ([]Application, error) {
	return s.list(func(app Application) bool {
		return app.Status == StatusSubmitted || app.Status == StatusUnderReview
	}), nil
}

func (s *MemoryStore) list(keep func(Application) bool) []Application {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Application
	for _, id := range s.order {
		if app := s.apps[id]; keep(app) {
			out = append(out, app)
		}
	}
	return out
}

func (s *MemoryStore) Update(_ context.Context, id domain.ApplicationID, mutate func(Application) (Application, error)) (Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.apps[id]
	if !ok {
		return Application{}, sentinel.ErrNotFound
	}
	app, err := mutate(app)
	if err != nil {
		return Application{}, err
	}
	s.apps[id] = app
	return app, nil
}
