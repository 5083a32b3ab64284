package customer

import "context"

// Store persists customers. Implementations return sentinel.ErrNotFound for
// missing records; the service translates to domain errors.
type Store interface {
	Save(ctx context.Context, c Customer) error
	FindByID(ctx context.Context, id string) (Customer, error)
	FindByMobile(ctx context.Context, mobile string) (Customer, error)
}
