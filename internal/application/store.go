package application

import (
	"context"

	"aurum/pkg/domain"
)

// Store persists applications. Update applies mutate to the current row
// under the store's write lock so concurrent transitions on the same
// application serialize; an error from mutate aborts the update and is
// returned unchanged.
type Store interface {
	Create(ctx context.Context, app Application) error
	FindByID(ctx context.Context, id domain.ApplicationID) (Application, error)
	ListByCustomer(ctx context.Context, id domain.CustomerID) ([]Application, error)
	ListPending(ctx context.Context) ([]Application, error)
	Update(ctx context.Context, id domain.ApplicationID, mutate func(Application) (Application, error)) (Application, error)
}
