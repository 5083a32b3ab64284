package recordstore

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"sync"

	dErrors "aurum/pkg/domain-errors"
)

// CSVStore persists one CSV file per table under a data directory. A mutex
// per table serializes individual writes. The lock is not held across a
// Scan followed by a Rewrite; callers doing read-modify-rewrite must
// serialize that sequence themselves.
type CSVStore struct {
	dir    string
	mu     map[string]*sync.Mutex
	mapsMu sync.Mutex
}

// OpenCSV prepares the data directory and creates any missing table file
// with its header row.
func OpenCSV(dir string) (*CSVStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeStorage, "create data directory")
	}
	s := &CSVStore{dir: dir, mu: make(map[string]*sync.Mutex)}
	for table, header := range Headers {
		if err := s.ensureTable(table, header); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *CSVStore) ensureTable(table string, header []string) error {
	path := s.path(table)
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return dErrors.Wrap(err, dErrors.CodeStorage, "stat table "+table)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "create table "+table)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "write header "+table)
	}
	w.Flush()
	return dErrors.Wrap(w.Error(), dErrors.CodeStorage, "flush header "+table)
}

func (s *CSVStore) path(table string) string {
	return filepath.Join(s.dir, table+".csv")
}

func (s *CSVStore) lock(table string) *sync.Mutex {
	s.mapsMu.Lock()
	defer s.mapsMu.Unlock()
	m, ok := s.mu[table]
	if !ok {
		m = &sync.Mutex{}
		s.mu[table] = m
	}
	return m
}

// Append adds one record to the end of the table.
func (s *CSVStore) Append(_ context.Context, table string, rec Record) error {
	header, ok := Headers[table]
	if !ok {
		return dErrors.New(dErrors.CodeStorage, "unknown table "+table)
	}
	if len(rec) != len(header) {
		return dErrors.Newf(dErrors.CodeStorage, "table %s expects %d columns, got %d", table, len(header), len(rec))
	}

	m := s.lock(table)
	m.Lock()
	defer m.Unlock()

	f, err := os.OpenFile(s.path(table), os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "open table "+table)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(rec); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "append to table "+table)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "flush table "+table)
	}
	return nil
}

// Scan returns a lazy, restartable sequence over the table in insertion
// order. Each range re-opens the file, so a sequence can be iterated more
// than once and always reflects the current table contents.
func (s *CSVStore) Scan(table string) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		f, err := os.Open(s.path(table))
		if err != nil {
			yield(nil, dErrors.Wrap(err, dErrors.CodeStorage, "open table "+table))
			return
		}
		defer f.Close()

		r := csv.NewReader(f)
		r.FieldsPerRecord = -1
		if _, err := r.Read(); err != nil { // header
			if err != io.EOF {
				yield(nil, dErrors.Wrap(err, dErrors.CodeStorage, "read header "+table))
			}
			return
		}
		for {
			row, err := r.Read()
			if err == io.EOF {
				return
			}
			if err != nil {
				yield(nil, dErrors.Wrap(err, dErrors.CodeStorage, "read table "+table))
				return
			}
			if !yield(Record(row), nil) {
				return
			}
		}
	}
}

// Rewrite atomically replaces the table contents with the given records.
// The new table is written to a temporary file and renamed into place, so a
// crash mid-rewrite leaves the previous contents intact.
func (s *CSVStore) Rewrite(_ context.Context, table string, recs []Record) error {
	header, ok := Headers[table]
	if !ok {
		return dErrors.New(dErrors.CodeStorage, "unknown table "+table)
	}
	for _, rec := range recs {
		if len(rec) != len(header) {
			return dErrors.Newf(dErrors.CodeStorage, "table %s expects %d columns, got %d", table, len(header), len(rec))
		}
	}

	m := s.lock(table)
	m.Lock()
	defer m.Unlock()

	tmp, err := os.CreateTemp(s.dir, table+".rewrite-*")
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "create temp file for "+table)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	w := csv.NewWriter(tmp)
	if err := w.Write(header); err != nil {
		tmp.Close()
		return dErrors.Wrap(err, dErrors.CodeStorage, "write header "+table)
	}
	for _, rec := range recs {
		if err := w.Write(rec); err != nil {
			tmp.Close()
			return dErrors.Wrap(err, dErrors.CodeStorage, "rewrite table "+table)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return dErrors.Wrap(err, dErrors.CodeStorage, "flush table "+table)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return dErrors.Wrap(err, dErrors.CodeStorage, "sync table "+table)
	}
	if err := tmp.Close(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, "close temp file for "+table)
	}
	if err := os.Rename(tmpName, s.path(table)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStorage, fmt.Sprintf("replace table %s", table))
	}
	return nil
}
