package customer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"aurum/internal/recordstore"
	dErrors "aurum/pkg/domain-errors"
)

func validInput() RegisterInput {
	return RegisterInput{
		FullName: "Ravi Kumar",
		DOB:      "1990-01-01",
		Gender:   "Male",
		Mobile:   "9876543210",
		Email:    "ravi@example.com",
		Address:  "12 MG Road, Bengaluru",
		PAN:      "ABCDE1234F",
		Aadhaar:  "123456789012",
		PIN:      "4321",
	}
}

func TestRegister_RoundTripsThroughFlatTable(t *testing.T) {
	ctx := context.Background()
	records, err := recordstore.OpenCSV(t.TempDir())
	require.NoError(t, err)
	svc := NewService(NewRecordStore(records))

	created, err := svc.Register(ctx, validInput())
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got, "stored record must round-trip field for field")
}

func TestRecordStore_TruncatedRow(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	records, err := recordstore.OpenCSV(dir)
	require.NoError(t, err)
	store := NewRecordStore(records)

	f, err := os.OpenFile(filepath.Join(dir, recordstore.TableCustomers+".csv"), os.O_APPEND|os.O_WRONLY, 0o644)
	require.NoError(t, err)
	_, err = f.WriteString("c1,Ravi Kumar,1990-01-01\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = store.FindByMobile(ctx, "9876543210")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeStorage))
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	tests := []struct {
		name    string
		mutate  func(*RegisterInput)
		problem string
	}{
		{"digits in name", func(in *RegisterInput) { in.FullName = "Ravi2" }, "invalid name"},
		{"mobile not starting 6-9", func(in *RegisterInput) { in.Mobile = "1234567890" }, "invalid mobile"},
		{"short mobile", func(in *RegisterInput) { in.Mobile = "98765" }, "invalid mobile"},
		{"bad email", func(in *RegisterInput) { in.Email = "not-an-email" }, "invalid email"},
		{"bad PAN", func(in *RegisterInput) { in.PAN = "1234567890" }, "invalid PAN"},
		{"short aadhaar", func(in *RegisterInput) { in.Aadhaar = "1234" }, "invalid Aadhaar"},
		{"alphabetic PIN", func(in *RegisterInput) { in.PIN = "abcd" }, "invalid PIN"},
		{"long PIN", func(in *RegisterInput) { in.PIN = "12345" }, "invalid PIN"},
		{"bad dob", func(in *RegisterInput) { in.DOB = "01-01-1990" }, "invalid date of birth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := svc.Register(ctx, in)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			assert.Contains(t, err.Error(), tt.problem)
		})
	}

	t.Run("reports all problems at once", func(t *testing.T) {
		in := validInput()
		in.FullName = "R2"
		in.PIN = "1"
		_, err := svc.Register(ctx, in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid name")
		assert.Contains(t, err.Error(), "invalid PIN")
	})

	t.Run("lowercase PAN is normalized", func(t *testing.T) {
		in := validInput()
		in.Mobile = "9876543299"
		in.PAN = "abcde1234f"
		c, err := svc.Register(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "ABCDE1234F", c.PAN)
	})
}

func TestRegister_DuplicateMobile(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())

	_, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	_, err = svc.Register(ctx, validInput())
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(NewMemoryStore())
	created, err := svc.Register(ctx, validInput())
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		got, err := svc.Authenticate(ctx, "9876543210", "4321")
		require.NoError(t, err)
		assert.Equal(t, created.ID, got.ID)
	})

	t.Run("wrong PIN", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "9876543210", "0000")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("unknown mobile", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "9999999999", "4321")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestAadhaarLast4(t *testing.T) {
	c := Customer{Aadhaar: "123456789012"}
	assert.Equal(t, "9012", c.AadhaarLast4())
}
