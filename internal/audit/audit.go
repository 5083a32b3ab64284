// Package audit captures the append-only trail of officer actions. Every
// decision writes exactly one entry; entries are immutable once written.
package audit

import (
	"context"
	"time"

	"aurum/internal/recordstore"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
)

// Action tags recorded in the trail.
const (
	ActionRejected       = "APPLICATION_REJECTED"
	ActionMatchConfirmed = "IDENTITY_MATCH_CONFIRMED"
)

// Entry is one audit record. Actor is the officer's display name so the
// trail reads without a join against the staff table.
type Entry struct {
	Timestamp     time.Time
	Actor         string
	ApplicationID domain.ApplicationID
	Action        string
	Remarks       string
}

// Store persists audit entries.
type Store interface {
	Append(ctx context.Context, e Entry) error
	ListByApplication(ctx context.Context, appID domain.ApplicationID) ([]Entry, error)
}

// Publisher captures structured audit entries. It stamps the time so call
// sites stay terse, and uses the storage layer for persistence so tests can
// swap sinks easily.
type Publisher struct {
	store Store
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store}
}

func (p *Publisher) Emit(ctx context.Context, e Entry) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	return p.store.Append(ctx, e)
}

func (p *Publisher) List(ctx context.Context, appID domain.ApplicationID) ([]Entry, error) {
	return p.store.ListByApplication(ctx, appID)
}

// RecordStore persists entries on the flat audit table.
type RecordStore struct {
	records recordstore.Store
}

func NewRecordStore(records recordstore.Store) *RecordStore {
	return &RecordStore{records: records}
}

func (s *RecordStore) Append(ctx context.Context, e Entry) error {
	return s.records.Append(ctx, recordstore.TableAuditLog, recordstore.Record{
		e.Timestamp.Format(time.RFC3339), e.Actor, e.ApplicationID.String(),
		e.Action, e.Remarks,
	})
}

func (s *RecordStore) ListByApplication(_ context.Context, appID domain.ApplicationID) ([]Entry, error) {
	var out []Entry
	for rec, err := range s.records.Scan(recordstore.TableAuditLog) {
		if err != nil {
			return nil, err
		}
		if len(rec) != len(recordstore.Headers[recordstore.TableAuditLog]) {
			return nil, dErrors.New(dErrors.CodeStorage, "malformed audit record")
		}
		if rec[2] != appID.String() {
			continue
		}
		ts, _ := time.Parse(time.RFC3339, rec[0])
		out = append(out, Entry{
			Timestamp:     ts,
			Actor:         rec[1],
			ApplicationID: domain.ApplicationID(rec[2]),
			Action:        rec[3],
			Remarks:       rec[4],
		})
	}
	return out, nil
}
