package recordstore

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "aurum/pkg/domain-errors"
)

func openTestStore(t *testing.T) *CSVStore {
	t.Helper()
	store, err := OpenCSV(t.TempDir())
	require.NoError(t, err)
	return store
}

func collect(t *testing.T, store Store, table string) []Record {
	t.Helper()
	var recs []Record
	for rec, err := range store.Scan(table) {
		require.NoError(t, err)
		recs = append(recs, rec)
	}
	return recs
}

func TestOpenCSV_CreatesTablesWithHeaders(t *testing.T) {
	dir := t.TempDir()
	_, err := OpenCSV(dir)
	require.NoError(t, err)

	for table, header := range Headers {
		data, err := os.ReadFile(filepath.Join(dir, table+".csv"))
		require.NoError(t, err)
		firstLine := strings.SplitN(string(data), "\n", 2)[0]
		assert.Equal(t, strings.Join(header, ","), firstLine, table)
	}
}

func TestOpenCSV_PreservesExistingTables(t *testing.T) {
	dir := t.TempDir()
	store, err := OpenCSV(dir)
	require.NoError(t, err)
	require.NoError(t, store.Append(context.Background(), TableNotifications,
		Record{"c1", "GL-00000001", "SYSTEM", "hello", "2026-01-01T00:00:00Z"}))

	reopened, err := OpenCSV(dir)
	require.NoError(t, err)
	assert.Len(t, collect(t, reopened, TableNotifications), 1)
}

func TestCSVStore_AppendAndScan(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := Record{"c1", "GL-00000001", "SYSTEM", "visit scheduled", "2026-01-01T10:00:00Z"}
	second := Record{"c2", "GL-00000002", "LOAN_OFFICER", "rejected", "2026-01-02T10:00:00Z"}
	require.NoError(t, store.Append(ctx, TableNotifications, first))
	require.NoError(t, store.Append(ctx, TableNotifications, second))

	recs := collect(t, store, TableNotifications)
	require.Len(t, recs, 2)
	assert.Equal(t, first, recs[0], "insertion order is preserved")
	assert.Equal(t, second, recs[1])
}

func TestCSVStore_AppendRejectsColumnMismatch(t *testing.T) {
	store := openTestStore(t)
	err := store.Append(context.Background(), TableNotifications, Record{"only", "four", "columns", "here"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeStorage))
}

func TestCSVStore_AppendUnknownTable(t *testing.T) {
	store := openTestStore(t)
	err := store.Append(context.Background(), "no_such_table", Record{"x"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeStorage))
}

func TestCSVStore_ScanIsRestartable(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	require.NoError(t, store.Append(ctx, TableAuditLog,
		Record{"2026-01-01T00:00:00Z", "Anita Sharma", "GL-00000001", "APPLICATION_REJECTED", "blurred document"}))

	seq := store.Scan(TableAuditLog)
	for range 3 {
		var count int
		for _, err := range seq {
			require.NoError(t, err)
			count++
		}
		assert.Equal(t, 1, count)
	}
}

func TestCSVStore_ScanHandlesQuotedFields(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	message := `rejected, reason: "document unreadable"`
	require.NoError(t, store.Append(ctx, TableNotifications,
		Record{"c1", "GL-00000001", "LOAN_OFFICER", message, "2026-01-01T00:00:00Z"}))

	recs := collect(t, store, TableNotifications)
	require.Len(t, recs, 1)
	assert.Equal(t, message, recs[0][3])
}

func TestCSVStore_Rewrite(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := Record{"GL-00000001", "c1", "50000", "12", "20", "22", "SUBMITTED", "", "", "", "", "2026-01-01T00:00:00Z"}
	require.NoError(t, store.Append(ctx, TableApplications, base))

	updated := append(Record{}, base...)
	updated[6] = "UNDER_REVIEW"
	require.NoError(t, store.Rewrite(ctx, TableApplications, []Record{updated}))

	recs := collect(t, store, TableApplications)
	require.Len(t, recs, 1)
	assert.Equal(t, "UNDER_REVIEW", recs[0][6])

	t.Run("leaves no temp files behind", func(t *testing.T) {
		entries, err := os.ReadDir(filepath.Dir(store.path(TableApplications)))
		require.NoError(t, err)
		for _, e := range entries {
			assert.NotContains(t, e.Name(), "rewrite-")
		}
	})
}

func TestCSVStore_ConcurrentAppends(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	const writers = 20
	done := make(chan error, writers)
	for i := 0; i < writers; i++ {
		go func() {
			done <- store.Append(ctx, TableAuditLog,
				Record{"2026-01-01T00:00:00Z", "officer", "GL-00000001", "PICKED_UP", ""})
		}()
	}
	for i := 0; i < writers; i++ {
		require.NoError(t, <-done)
	}
	assert.Len(t, collect(t, store, TableAuditLog), writers)
}

func TestMemoryStore_MatchesCSVSemantics(t *testing.T) {
	ctx := context.Background()
	store := NewMemory()

	rec := Record{"c1", "GL-00000001", "SYSTEM", "msg", "2026-01-01T00:00:00Z"}
	require.NoError(t, store.Append(ctx, TableNotifications, rec))

	recs := collect(t, store, TableNotifications)
	require.Len(t, recs, 1)
	assert.Equal(t, rec, recs[0])

	require.NoError(t, store.Rewrite(ctx, TableNotifications, nil))
	assert.Empty(t, collect(t, store, TableNotifications))

	err := store.Append(ctx, TableNotifications, Record{"short"})
	assert.True(t, dErrors.HasCode(err, dErrors.CodeStorage))
}
