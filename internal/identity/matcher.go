// Package identity screens document-extracted identity fields against what
// the customer declared at registration. The verdict is an assistive signal
// for the reviewing officer; it never approves or blocks on its own.
package identity

import "strings"

// Level grades the identity-consistency risk of an application.
type Level string

const (
	RiskLow    Level = "LOW"
	RiskMedium Level = "MEDIUM"
	RiskHigh   Level = "HIGH"
)

// Declared holds the identity fields the customer registered with.
type Declared struct {
	Name    string
	DOB     string
	IDLast4 string
}

// Extracted holds the fields read from the uploaded document. Any field may
// be empty when extraction found nothing usable; an empty field never
// matches.
type Extracted struct {
	Name    string `json:"name,omitempty"`
	DOB     string `json:"dob,omitempty"`
	IDLast4 string `json:"id_last4,omitempty"`
}

// Result carries the three independent per-field flags and the derived
// verdict.
type Result struct {
	NameMatch bool
	DOBMatch  bool
	IDMatch   bool
	Risk      Level
	Reason    string
}

// Matcher is pluggable so a stronger comparison (fuzzy matching, an external
// verification provider) can replace the rule-based one without touching the
// application lifecycle.
type Matcher interface {
	Match(declared Declared, extracted Extracted) Result
}

// RuleMatcher implements the screening heuristics: substring containment for
// name (extraction is often partial, so the extracted name only needs to
// appear inside the declared one), substring for date of birth, and exact
// equality for the ID's last four digits.
type RuleMatcher struct{}

func NewRuleMatcher() RuleMatcher { return RuleMatcher{} }

func (RuleMatcher) Match(declared Declared, extracted Extracted) Result {
	res := Result{
		NameMatch: extracted.Name != "" &&
			strings.Contains(strings.ToLower(declared.Name), strings.ToLower(extracted.Name)),
		DOBMatch: extracted.DOB != "" && strings.Contains(declared.DOB, extracted.DOB),
		IDMatch:  extracted.IDLast4 != "" && extracted.IDLast4 == declared.IDLast4,
	}

	switch {
	case res.NameMatch && res.DOBMatch && res.IDMatch:
		res.Risk = RiskLow
		res.Reason = "All identity fields match customer records."
	case res.NameMatch && res.IDMatch:
		res.Risk = RiskMedium
		res.Reason = "Name and ID match, but DOB mismatch or missing."
	default:
		res.Risk = RiskHigh
		res.Reason = "Identity mismatch or insufficient document verification."
	}
	return res
}
