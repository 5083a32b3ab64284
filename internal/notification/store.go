package notification

import (
	"context"
	"time"

	"aurum/internal/recordstore"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
)

// Store persists notifications in insertion order.
type Store interface {
	Append(ctx context.Context, n Notification) error
	ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]Notification, error)
}

// RecordStore persists notifications on the flat notification table.
type RecordStore struct {
	records recordstore.Store
}

func NewRecordStore(records recordstore.Store) *RecordStore {
	return &RecordStore{records: records}
}

func (s *RecordStore) Append(ctx context.Context, n Notification) error {
	return s.records.Append(ctx, recordstore.TableNotifications, recordstore.Record{
		n.CustomerID.String(), n.ApplicationID.String(), string(n.Sender),
		n.Message, n.CreatedAt.Format(time.RFC3339),
	})
}

func (s *RecordStore) ListByCustomer(_ context.Context, customerID domain.CustomerID) ([]Notification, error) {
	var out []Notification
	for rec, err := range s.records.Scan(recordstore.TableNotifications) {
		if err != nil {
			return nil, err
		}
		if len(rec) != len(recordstore.Headers[recordstore.TableNotifications]) {
			return nil, dErrors.New(dErrors.CodeStorage, "malformed notification record")
		}
		if rec[0] != customerID.String() {
			continue
		}
		createdAt, _ := time.Parse(time.RFC3339, rec[4])
		out = append(out, Notification{
			CustomerID:    domain.CustomerID(rec[0]),
			ApplicationID: domain.ApplicationID(rec[1]),
			Sender:        Sender(rec[2]),
			Message:       rec[3],
			CreatedAt:     createdAt,
		})
	}
	return out, nil
}
