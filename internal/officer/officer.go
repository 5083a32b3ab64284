// Package officer resolves loan-officer identities for review and audit.
package officer

import (
	"context"
	"errors"

	"aurum/internal/recordstore"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/platform/sentinel"
)

// Officer is a staff member allowed to review applications.
type Officer struct {
	ID      domain.OfficerID
	Name    string
	EmpCode string
	PIN     string
}

// Store resolves officers by employee code.
type Store interface {
	FindByEmpCode(ctx context.Context, empCode string) (Officer, error)
	Save(ctx context.Context, o Officer) error
	Count(ctx context.Context) (int, error)
}

// Service authenticates officers against the staff table.
type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Authenticate resolves an officer by employee code and PIN.
func (s *Service) Authenticate(ctx context.Context, empCode, pin string) (Officer, error) {
	o, err := s.store.FindByEmpCode(ctx, empCode)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return Officer{}, dErrors.New(dErrors.CodeNotFound, "invalid credentials")
		}
		return Officer{}, err
	}
	if o.PIN != pin {
		return Officer{}, dErrors.New(dErrors.CodeNotFound, "invalid credentials")
	}
	return o, nil
}

// Seed writes the bootstrap officer into an empty staff table so a fresh
// deployment has someone who can review.
func Seed(ctx context.Context, store Store) error {
	n, err := store.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return store.Save(ctx, Officer{
		ID:      "OFF001",
		Name:    "Anita Sharma",
		EmpCode: "EMP1023",
		PIN:     "9999",
	})
}

// RecordStore persists officers on the flat staff table.
type RecordStore struct {
	records recordstore.Store
}

func NewRecordStore(records recordstore.Store) *RecordStore {
	return &RecordStore{records: records}
}

func (s *RecordStore) Save(ctx context.Context, o Officer) error {
	return s.records.Append(ctx, recordstore.TableOfficers,
		recordstore.Record{o.ID.String(), o.Name, o.EmpCode, o.PIN})
}

func (s *RecordStore) FindByEmpCode(_ context.Context, empCode string) (Officer, error) {
	for rec, err := range s.records.Scan(recordstore.TableOfficers) {
		if err != nil {
			return Officer{}, err
		}
		if len(rec) != len(recordstore.Headers[recordstore.TableOfficers]) {
			return Officer{}, dErrors.New(dErrors.CodeStorage, "malformed officer record")
		}
		if rec[2] == empCode {
			return Officer{ID: domain.OfficerID(rec[0]), Name: rec[1], EmpCode: rec[2], PIN: rec[3]}, nil
		}
	}
	return Officer{}, sentinel.ErrNotFound
}

func (s *RecordStore) Count(_ context.Context) (int, error) {
	var n int
	for _, err := range s.records.Scan(recordstore.TableOfficers) {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}
