package recordstore

import (
	"context"
	"iter"
	"sync"

	dErrors "aurum/pkg/domain-errors"
)

// MemoryStore keeps tables in memory with the same semantics as the CSV
// store. It backs unit tests and ephemeral deployments.
type MemoryStore struct {
	mu     sync.RWMutex
	tables map[string][]Record
}

func NewMemory() *MemoryStore {
	tables := make(map[string][]Record, len(Headers))
	for table := range Headers {
		tables[table] = nil
	}
	return &MemoryStore{tables: tables}
}

func (s *MemoryStore) Append(_ context.Context, table string, rec Record) error {
	header, ok := Headers[table]
	if !ok {
		return dErrors.New(dErrors.CodeStorage, "unknown table "+table)
	}
	if len(rec) != len(header) {
		return dErrors.Newf(dErrors.CodeStorage, "table %s expects %d columns, got %d", table, len(header), len(rec))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = append(s.tables[table], append(Record{}, rec...))
	return nil
}

func (s *MemoryStore) Scan(table string) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		s.mu.RLock()
		if _, ok := Headers[table]; !ok {
			s.mu.RUnlock()
			yield(nil, dErrors.New(dErrors.CodeStorage, "unknown table "+table))
			return
		}
		recs := make([]Record, len(s.tables[table]))
		copy(recs, s.tables[table])
		s.mu.RUnlock()

		for _, rec := range recs {
			if !yield(rec, nil) {
				return
			}
		}
	}
}

func (s *MemoryStore) Rewrite(_ context.Context, table string, recs []Record) error {
	header, ok := Headers[table]
	if !ok {
		return dErrors.New(dErrors.CodeStorage, "unknown table "+table)
	}
	copied := make([]Record, 0, len(recs))
	for _, rec := range recs {
		if len(rec) != len(header) {
			return dErrors.Newf(dErrors.CodeStorage, "table %s expects %d columns, got %d", table, len(header), len(rec))
		}
		copied = append(copied, append(Record{}, rec...))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[table] = copied
	return nil
}
