package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "aurum/pkg/domain-errors"
)

func TestNewApplicationID_Format(t *testing.T) {
	seen := map[ApplicationID]bool{}
	for i := 0; i < 100; i++ {
		id := NewApplicationID()
		assert.Regexp(t, `^GL-[0-9A-F]{8}$`, string(id))
		assert.False(t, seen[id], "application ids must not repeat")
		seen[id] = true
	}
}

func TestParseCustomerID(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseCustomerID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseCustomerID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseCustomerID(uuid.Nil.String())
		require.Error(t, err)
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		raw := uuid.NewString()
		id, err := ParseCustomerID(raw)
		require.NoError(t, err)
		assert.Equal(t, CustomerID(raw), id)
	})
}

func TestParseApplicationID(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "GL-1A2B3C4D", false},
		{"lowercase hex rejected", "GL-1a2b3c4d", true},
		{"missing prefix", "1A2B3C4D", true},
		{"too short", "GL-1A2B3C", true},
		{"too long", "GL-1A2B3C4D5E", true},
		{"empty", "", true},
		{"path traversal", "../../GL-1A2B3C4D", true},
		{"oversized", "GL-" + strings.Repeat("A", 500), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseApplicationID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
