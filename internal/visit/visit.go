// Package visit records branch-visit appointments for physical collateral
// verification.
package visit

import (
	"context"

	"aurum/internal/recordstore"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
)

// StatusScheduled is the only slot status this system writes. A rescheduled
// visit would be a new row, not a mutation.
const StatusScheduled = "BRANCH_VISIT_SCHEDULED"

// Slot is one scheduled branch visit. Rows are never mutated.
type Slot struct {
	ApplicationID domain.ApplicationID
	Branch        string
	BranchCode    string
	Date          string // ISO date, yyyy-mm-dd
	Time          string // HH:MM, branch-local
	Status        string
}

// Branches is the catalog of branches accepting collateral verification
// visits, keyed by display name.
var Branches = map[string]string{
	"Mumbai Main Branch":    "BR001",
	"Delhi Central Branch":  "BR002",
	"Bengaluru City Branch": "BR003",
}

// BranchCode resolves a branch display name to its code.
func BranchCode(branch string) (string, bool) {
	code, ok := Branches[branch]
	return code, ok
}

// Store persists visit slots.
type Store interface {
	Schedule(ctx context.Context, slot Slot) error
	ListByApplication(ctx context.Context, appID domain.ApplicationID) ([]Slot, error)
}

// RecordStore persists slots on the flat branch-visit table.
type RecordStore struct {
	records recordstore.Store
}

func NewRecordStore(records recordstore.Store) *RecordStore {
	return &RecordStore{records: records}
}

func (s *RecordStore) Schedule(ctx context.Context, slot Slot) error {
	return s.records.Append(ctx, recordstore.TableBranchVisits, recordstore.Record{
		slot.ApplicationID.String(), slot.Branch, slot.BranchCode,
		slot.Date, slot.Time, slot.Status,
	})
}

func (s *RecordStore) ListByApplication(_ context.Context, appID domain.ApplicationID) ([]Slot, error) {
	var slots []Slot
	for rec, err := range s.records.Scan(recordstore.TableBranchVisits) {
		if err != nil {
			return nil, err
		}
		if len(rec) != len(recordstore.Headers[recordstore.TableBranchVisits]) {
			return nil, dErrors.New(dErrors.CodeStorage, "malformed branch visit record")
		}
		if rec[0] != appID.String() {
			continue
		}
		slots = append(slots, Slot{
			ApplicationID: domain.ApplicationID(rec[0]),
			Branch:        rec[1],
			BranchCode:    rec[2],
			Date:          rec[3],
			Time:          rec[4],
			Status:        rec[5],
		})
	}
	return slots, nil
}
