// Package policy holds the lending rules applied at submission time:
// collateral valuation, loan-to-value ceiling, amount and tenure bounds, and
// the EMI estimate shown to customers.
package policy

import (
	"math"

	dErrors "aurum/pkg/domain-errors"
)

// Gold valuation constants. The reference rate is a fixed demo figure, not a
// market feed.
const (
	GoldRatePerGram = 6000
	MaxLTV          = 0.75
	MinLoanAmount   = 20000
	MinTenureMonths = 1
	MaxTenureMonths = 36

	// DefaultAnnualRate is the headline interest rate used for EMI quotes.
	DefaultAnnualRate = 9.95
)

// PurityFactor converts declared carat to a fraction of the reference rate.
var PurityFactor = map[int]float64{
	18: 0.75,
	20: 0.83,
	22: 0.92,
	24: 1.00,
}

// SupportedCarat reports whether purity is accepted as collateral.
func SupportedCarat(carat int) bool {
	_, ok := PurityFactor[carat]
	return ok
}

// GoldValue assesses collateral value from net weight in grams and carat.
// Unknown carats assess to zero; callers validate carat first.
func GoldValue(netWeightGrams float64, carat int) int64 {
	return int64(netWeightGrams * GoldRatePerGram * PurityFactor[carat])
}

// MaxEligible returns the largest loan amount permitted against an assessed
// collateral value.
func MaxEligible(goldValue int64) int64 {
	return int64(float64(goldValue) * MaxLTV)
}

// CheckLoanTerms validates the requested amount and tenure against policy
// bounds and the LTV ceiling for the assessed collateral value.
func CheckLoanTerms(amount int64, tenureMonths int, goldValue int64) error {
	if tenureMonths < MinTenureMonths || tenureMonths > MaxTenureMonths {
		return dErrors.Newf(dErrors.CodeValidation, "tenure must be between %d and %d months", MinTenureMonths, MaxTenureMonths)
	}
	if amount < MinLoanAmount {
		return dErrors.Newf(dErrors.CodeValidation, "requested amount is below the minimum loan amount of %d", MinLoanAmount)
	}
	if max := MaxEligible(goldValue); amount > max {
		return dErrors.Newf(dErrors.CodePolicyViolation, "requested amount %d exceeds the maximum eligible amount %d for the declared gold", amount, max)
	}
	return nil
}

// EMIQuote carries the monthly installment and the figures behind it so the
// estimate stays explainable to the customer and the audit trail.
type EMIQuote struct {
	LoanAmount   int64   `json:"loan_amount"`
	TenureMonths int     `json:"tenure_months"`
	AnnualRate   float64 `json:"annual_rate"`
	MonthlyRate  float64 `json:"monthly_rate"`
	EMI          int64   `json:"emi"`
	Rationale    string  `json:"rationale"`
}

// EMI computes the installment with the standard reducing-balance formula:
// P x r x (1+r)^n / ((1+r)^n - 1). The result is truncated to whole units.
func EMI(loanAmount int64, annualRate float64, tenureMonths int) EMIQuote {
	monthlyRate := annualRate / 12 / 100
	var emi float64
	if monthlyRate == 0 {
		emi = float64(loanAmount) / float64(tenureMonths)
	} else {
		factor := math.Pow(1+monthlyRate, float64(tenureMonths))
		emi = float64(loanAmount) * monthlyRate * factor / (factor - 1)
	}
	return EMIQuote{
		LoanAmount:   loanAmount,
		TenureMonths: tenureMonths,
		AnnualRate:   annualRate,
		MonthlyRate:  math.Round(monthlyRate*1e6) / 1e6,
		EMI:          int64(emi),
		Rationale: "EMI is calculated with the standard reducing-balance formula " +
			"from the selected loan amount, tenure, and interest rate.",
	}
}
