package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"aurum/internal/identity"
	"aurum/internal/recordstore"
	"aurum/pkg/domain"
)

func storedApplication(id domain.ApplicationID) Application {
	return Application{
		ID:             id,
		CustomerID:     domain.CustomerID("7b1d9a2e-4c3f-4d5e-9f6a-1b2c3d4e5f60"),
		Amount:         50000,
		TenureMonths:   12,
		NetWeightGrams: 20,
		Carat:          22,
		Status:         StatusSubmitted,
		Extracted:      identity.Extracted{Name: "ravi kumar", DOB: "1990-04-12", IDLast4: "9012"},
		CreatedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func TestRecordStore_RoundTrip(t *testing.T) {
	records, err := recordstore.OpenCSV(t.TempDir())
	require.NoError(t, err)
	store := NewRecordStore(records)
	ctx := context.Background()

	app := storedApplication(domain.NewApplicationID())
	require.NoError(t, store.Create(ctx, app))

	got, err := store.FindByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, app, got)
}

// Update rewrites the whole applications file, so a Create landing between
// its scan and its rewrite would vanish with the rewrite. Both operations
// take the store lock; this pins that no submission is lost under load.
func TestRecordStore_ConcurrentCreateAndUpdate(t *testing.T) {
	records, err := recordstore.OpenCSV(t.TempDir())
	require.NoError(t, err)
	store := NewRecordStore(records)
	ctx := context.Background()

	base := storedApplication(domain.NewApplicationID())
	require.NoError(t, store.Create(ctx, base))

	const n = 100
	ids := make([]domain.ApplicationID, n)
	for i := range ids {
		ids[i] = domain.NewApplicationID()
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		g.Go(func() error {
			return store.Create(gctx, storedApplication(id))
		})
		g.Go(func() error {
			_, err := store.Update(gctx, base.ID, func(app Application) (Application, error) {
				app.FailureReason = "touched"
				return app, nil
			})
			return err
		})
	}
	require.NoError(t, g.Wait())

	for _, id := range ids {
		_, err := store.FindByID(ctx, id)
		assert.NoError(t, err, "application %s lost to a concurrent rewrite", id)
	}
}
