package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "aurum/pkg/domain-errors"
)

func TestGoldValue(t *testing.T) {
	// 20g of 22-carat gold: 20 * 6000 * 0.92.
	assert.Equal(t, int64(110400), GoldValue(20, 22))
	// 24 carat uses the full reference rate.
	assert.Equal(t, int64(60000), GoldValue(10, 24))
	// Unknown carat assesses to zero.
	assert.Equal(t, int64(0), GoldValue(10, 21))
}

func TestCheckLoanTerms(t *testing.T) {
	goldValue := GoldValue(20, 22) // 110400, max eligible 82800

	t.Run("within bounds", func(t *testing.T) {
		assert.NoError(t, CheckLoanTerms(80000, 12, goldValue))
	})

	t.Run("amount at the LTV ceiling", func(t *testing.T) {
		assert.NoError(t, CheckLoanTerms(MaxEligible(goldValue), 12, goldValue))
	})

	t.Run("amount above the LTV ceiling", func(t *testing.T) {
		err := CheckLoanTerms(MaxEligible(goldValue)+1, 12, goldValue)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodePolicyViolation))
	})

	t.Run("amount below minimum", func(t *testing.T) {
		err := CheckLoanTerms(19999, 12, goldValue)
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
	})

	t.Run("tenure out of range", func(t *testing.T) {
		for _, tenure := range []int{0, 37, -1} {
			err := CheckLoanTerms(50000, tenure, goldValue)
			require.Error(t, err)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
		}
	})
}

func TestEMI(t *testing.T) {
	quote := EMI(100000, DefaultAnnualRate, 12)
	assert.Equal(t, int64(100000), quote.LoanAmount)
	assert.Equal(t, 12, quote.TenureMonths)
	// Reducing-balance EMI for 100000 at 9.95% over 12 months is ~8789.
	assert.InDelta(t, 8789, quote.EMI, 2)
	assert.NotEmpty(t, quote.Rationale)

	t.Run("zero rate falls back to straight division", func(t *testing.T) {
		quote := EMI(12000, 0, 12)
		assert.Equal(t, int64(1000), quote.EMI)
	})
}
