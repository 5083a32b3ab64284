package application

import (
	"context"
	"strconv"
	"sync"
	"time"

	"aurum/internal/identity"
	"aurum/internal/recordstore"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/platform/sentinel"
)

// RecordStore keeps applications in the flat applications table. All
// writes hold a store-level lock: Update's read-modify-rewrite replaces
// the whole file, so an Append landing between its scan and its rewrite
// would be erased by the rewrite. Create therefore takes the same lock.
type RecordStore struct {
	records recordstore.Store
	mu      sync.Mutex
}

func NewRecordStore(records recordstore.Store) *RecordStore {
	return &RecordStore{records: records}
}

func (s *RecordStore) Create(ctx context.Context, app Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records.Append(ctx, recordstore.TableApplications, toRecord(app))
}

func (s *RecordStore) FindByID(_ context.Context, id domain.ApplicationID) (Application, error) {
	for rec, err := range s.records.Scan(recordstore.TableApplications) {
		if err != nil {
			return Application{}, err
		}
		if rec[0] == string(id) {
			return fromRecord(rec)
		}
	}
	return Application{}, sentinel.ErrNotFound
}

func (s *RecordStore) ListByCustomer(_ context.Context, id domain.CustomerID) ([]Application, error) {
	return s.list(func(app Application) bool { return app.CustomerID == id })
}

func (s *RecordStore) ListPending(_ context.Context) ([]Application, error) {
	return s.list(func(app Application) bool {
		return app.Status == StatusSubmitted || app.Status == StatusUnderReview
	})
}

func (s *RecordStore) list(keep func(Application) bool) ([]Application, error) {
	var out []Application
	for rec, err := range s.records.Scan(recordstore.TableApplications) {
		if err != nil {
			return nil, err
		}
		app, err := fromRecord(rec)
		if err != nil {
			return nil, err
		}
		if keep(app) {
			out = append(out, app)
		}
	}
	return out, nil
}

func (s *RecordStore) Update(ctx context.Context, id domain.ApplicationID, mutate func(Application) (Application, error)) (Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		all     []recordstore.Record
		updated Application
		found   bool
	)
	for rec, err := range s.records.Scan(recordstore.TableApplications) {
		if err != nil {
			return Application{}, err
		}
		if rec[0] == string(id) {
			app, err := fromRecord(rec)
			if err != nil {
				return Application{}, err
			}
			app, err = mutate(app)
			if err != nil {
				return Application{}, err
			}
			rec = toRecord(app)
			updated = app
			found = true
		}
		all = append(all, rec)
	}
	if !found {
		return Application{}, sentinel.ErrNotFound
	}
	if err := s.records.Rewrite(ctx, recordstore.TableApplications, all); err != nil {
		return Application{}, err
	}
	return updated, nil
}

func toRecord(app Application) recordstore.Record {
	return recordstore.Record{
		string(app.ID),
		string(app.CustomerID),
		strconv.FormatInt(app.Amount, 10),
		strconv.Itoa(app.TenureMonths),
		strconv.FormatFloat(app.NetWeightGrams, 'f', -1, 64),
		strconv.Itoa(app.Carat),
		string(app.Status),
		app.FailureReason,
		app.Extracted.Name,
		app.Extracted.DOB,
		app.Extracted.IDLast4,
		app.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func fromRecord(rec recordstore.Record) (Application, error) {
	if len(rec) != len(recordstore.Headers[recordstore.TableApplications]) {
		return Application{}, dErrors.New(dErrors.CodeStorage, "malformed application record")
	}
	amount, err := strconv.ParseInt(rec[2], 10, 64)
	if err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "parse application amount")
	}
	tenure, err := strconv.Atoi(rec[3])
	if err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "parse application tenure")
	}
	weight, err := strconv.ParseFloat(rec[4], 64)
	if err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "parse application weight")
	}
	carat, err := strconv.Atoi(rec[5])
	if err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "parse application carat")
	}
	created, err := time.Parse(time.RFC3339, rec[11])
	if err != nil {
		return Application{}, dErrors.Wrap(err, dErrors.CodeStorage, "parse application created_at")
	}
	return Application{
		ID:             domain.ApplicationID(rec[0]),
		CustomerID:     domain.CustomerID(rec[1]),
		Amount:         amount,
		TenureMonths:   tenure,
		NetWeightGrams: weight,
		Carat:          carat,
		Status:         Status(rec[6]),
		FailureReason:  rec[7],
		Extracted: identity.Extracted{
			Name:    rec[8],
			DOB:     rec[9],
			IDLast4: rec[10],
		},
		CreatedAt: created,
	}, nil
}
