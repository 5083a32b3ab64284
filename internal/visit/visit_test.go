package visit

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurum/internal/recordstore"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
)

func TestBranchCode(t *testing.T) {
	code, ok := BranchCode("Mumbai Main Branch")
	require.True(t, ok)
	assert.Equal(t, "BR001", code)

	_, ok = BranchCode("Chennai Branch")
	assert.False(t, ok)
}

func TestRecordStore(t *testing.T) {
	ctx := context.Background()
	store := NewRecordStore(recordstore.NewMemory())
	appID := domain.ApplicationID("GL-1A2B3C4D")

	slot := Slot{
		ApplicationID: appID,
		Branch:        "Delhi Central Branch",
		BranchCode:    "BR002",
		Date:          "2026-03-05",
		Time:          "11:30",
		Status:        StatusScheduled,
	}
	require.NoError(t, store.Schedule(ctx, slot))

	slots, err := store.ListByApplication(ctx, appID)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, slot, slots[0])

	slots, err = store.ListByApplication(ctx, domain.ApplicationID("GL-99999999"))
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// A row with missing columns, e.g. after a hand edit of the data file, must
// surface as a storage error rather than an index panic.
func TestRecordStore_TruncatedRow(t *testing.T) {
	dir := t.TempDir()
	records, err := recordstore.OpenCSV(dir)
	require.NoError(t, err)
	store := NewRecordStore(records)

	f, err := os.OpenFile(filepath.Join(dir, recordstore.TableBranchVisits+".csv"), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("GL-1A2B3C4D,Delhi Central Branch\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = store.ListByApplication(context.Background(), domain.ApplicationID("GL-1A2B3C4D"))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeStorage))
}
