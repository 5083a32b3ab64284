package customer

import (
	"context"

	"aurum/internal/recordstore"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/platform/sentinel"
)

// RecordStore persists customers on the flat customer table.
type RecordStore struct {
	records recordstore.Store
}

func NewRecordStore(records recordstore.Store) *RecordStore {
	return &RecordStore{records: records}
}

func toRecord(c Customer) recordstore.Record {
	return recordstore.Record{
		c.ID.String(), c.FullName, c.DOB, c.Gender, c.Mobile,
		c.Email, c.Address, c.PAN, c.Aadhaar, c.PIN,
	}
}

func fromRecord(rec recordstore.Record) (Customer, error) {
	if len(rec) != len(recordstore.Headers[recordstore.TableCustomers]) {
		return Customer{}, dErrors.New(dErrors.CodeStorage, "malformed customer record")
	}
	return Customer{
		ID:       domain.CustomerID(rec[0]),
		FullName: rec[1],
		DOB:      rec[2],
		Gender:   rec[3],
		Mobile:   rec[4],
		Email:    rec[5],
		Address:  rec[6],
		PAN:      rec[7],
		Aadhaar:  rec[8],
		PIN:      rec[9],
	}, nil
}

func (s *RecordStore) Save(ctx context.Context, c Customer) error {
	return s.records.Append(ctx, recordstore.TableCustomers, toRecord(c))
}

func (s *RecordStore) FindByID(_ context.Context, id string) (Customer, error) {
	return s.find(func(c Customer) bool { return c.ID.String() == id })
}

func (s *RecordStore) FindByMobile(_ context.Context, mobile string) (Customer, error) {
	return s.find(func(c Customer) bool { return c.Mobile == mobile })
}

func (s *RecordStore) find(match func(Customer) bool) (Customer, error) {
	for rec, err := range s.records.Scan(recordstore.TableCustomers) {
		if err != nil {
			return Customer{}, err
		}
		c, err := fromRecord(rec)
		if err != nil {
			return Customer{}, err
		}
		if match(c) {
			return c, nil
		}
	}
	return Customer{}, sentinel.ErrNotFound
}
