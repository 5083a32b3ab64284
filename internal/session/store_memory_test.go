package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurum/internal/application"
	"aurum/pkg/platform/sentinel"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()

	draft := Draft{
		CustomerID: "cust-1",
		Ornaments: []application.OrnamentItem{
			{Type: "Chain", Qty: 1, Carat: 22, NetWeightGrams: 12.5},
		},
		Amount:       50000,
		TenureMonths: 12,
	}

	t.Run("round trip", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		require.NoError(t, store.Save(ctx, "sess-1", draft))

		got, err := store.Load(ctx, "sess-1")
		require.NoError(t, err)
		assert.Equal(t, draft, got)
	})

	t.Run("missing draft", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		_, err := store.Load(ctx, "sess-9")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("drafts are per session", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		require.NoError(t, store.Save(ctx, "sess-1", draft))

		_, err := store.Load(ctx, "sess-2")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("expired draft is gone", func(t *testing.T) {
		store := NewMemoryStore(-time.Second)
		require.NoError(t, store.Save(ctx, "sess-1", draft))

		_, err := store.Load(ctx, "sess-1")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})

	t.Run("clear is idempotent", func(t *testing.T) {
		store := NewMemoryStore(time.Minute)
		require.NoError(t, store.Save(ctx, "sess-1", draft))
		require.NoError(t, store.Clear(ctx, "sess-1"))
		require.NoError(t, store.Clear(ctx, "sess-1"))

		_, err := store.Load(ctx, "sess-1")
		assert.ErrorIs(t, err, sentinel.ErrNotFound)
	})
}
