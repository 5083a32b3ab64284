package notification

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurum/internal/recordstore"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type capturingPublisher struct {
	published []Notification
	err       error
}

func (p *capturingPublisher) Publish(_ context.Context, n Notification) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, n)
	return nil
}

func TestNotify_StampsTimeAndStores(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRecordStore(recordstore.NewMemory()), discardLogger())
	customerID := domain.NewCustomerID()

	err := svc.Notify(ctx, Notification{
		CustomerID:    customerID,
		ApplicationID: "GL-00000001",
		Sender:        SenderSystem,
		Message:       "Branch visit scheduled at Mumbai Main Branch on 2026-09-15 at 10:30.",
	})
	require.NoError(t, err)

	got, err := svc.ListByCustomer(ctx, customerID)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, SenderSystem, got[0].Sender)
	assert.False(t, got[0].CreatedAt.IsZero())
}

func TestListByCustomer_FiltersAndPreservesOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewRecordStore(recordstore.NewMemory()), discardLogger())
	mine := domain.NewCustomerID()
	other := domain.NewCustomerID()

	for i, msg := range []string{"first", "second"} {
		require.NoError(t, svc.Notify(ctx, Notification{
			CustomerID:    mine,
			ApplicationID: "GL-00000001",
			Sender:        SenderOfficer,
			Message:       msg,
			CreatedAt:     time.Date(2026, 1, 1+i, 0, 0, 0, 0, time.UTC),
		}))
	}
	require.NoError(t, svc.Notify(ctx, Notification{
		CustomerID: other, ApplicationID: "GL-00000002", Sender: SenderSystem, Message: "not mine",
	}))

	got, err := svc.ListByCustomer(ctx, mine)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Message)
	assert.Equal(t, "second", got[1].Message)
}

func TestRecordStore_TruncatedRow(t *testing.T) {
	dir := t.TempDir()
	records, err := recordstore.OpenCSV(dir)
	require.NoError(t, err)
	store := NewRecordStore(records)
	customerID := domain.NewCustomerID()

	f, err := os.OpenFile(filepath.Join(dir, recordstore.TableNotifications+".csv"), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString(customerID.String() + ",GL-00000001,SYSTEM\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = store.ListByCustomer(context.Background(), customerID)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeStorage))
}

func TestNotify_PublisherFanOut(t *testing.T) {
	ctx := context.Background()

	t.Run("publishes after store", func(t *testing.T) {
		pub := &capturingPublisher{}
		svc := NewService(NewRecordStore(recordstore.NewMemory()), discardLogger(), WithPublisher(pub))
		require.NoError(t, svc.Notify(ctx, Notification{
			CustomerID: domain.NewCustomerID(), ApplicationID: "GL-00000001",
			Sender: SenderSystem, Message: "hello",
		}))
		assert.Len(t, pub.published, 1)
	})

	t.Run("publisher failure does not fail the notify", func(t *testing.T) {
		pub := &capturingPublisher{err: errors.New("broker unavailable")}
		store := NewRecordStore(recordstore.NewMemory())
		svc := NewService(store, discardLogger(), WithPublisher(pub))
		customerID := domain.NewCustomerID()
		require.NoError(t, svc.Notify(ctx, Notification{
			CustomerID: customerID, ApplicationID: "GL-00000001",
			Sender: SenderSystem, Message: "hello",
		}))
		got, err := store.ListByCustomer(ctx, customerID)
		require.NoError(t, err)
		assert.Len(t, got, 1, "store remains the source of truth")
	})
}

func TestEncodeEnvelope(t *testing.T) {
	payload, err := encodeEnvelope(Notification{
		CustomerID:    "11111111-1111-1111-1111-111111111111",
		ApplicationID: "GL-00000001",
		Sender:        SenderOfficer,
		Message:       "Loan application rejected. Reason: document unreadable",
		CreatedAt:     time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, "GL-00000001", decoded["application_id"])
	assert.Equal(t, "LOAN_OFFICER", decoded["sender"])
	assert.Equal(t, "2026-05-01T12:00:00Z", decoded["created_at"])
}
