package customer

import (
	"regexp"
	"strings"

	"github.com/asaskevich/govalidator"

	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/masking"
)

// Customer is the registered identity a loan application references.
// Immutable after registration except via administrative correction, which
// is not modeled here.
type Customer struct {
	ID       domain.CustomerID
	FullName string
	DOB      string // ISO date, yyyy-mm-dd
	Gender   string
	Mobile   string
	Email    string
	Address  string
	PAN      string
	Aadhaar  string
	PIN      string // 4-digit authentication secret; deliberately weak
}

// AadhaarLast4 returns the last four digits of the government ID, the only
// part of it ever compared against extracted documents.
func (c Customer) AadhaarLast4() string {
	return masking.Last4(c.Aadhaar)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	FullName string `json:"full_name"`
	DOB      string `json:"dob"`
	Gender   string `json:"gender"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	PAN      string `json:"pan"`
	Aadhaar  string `json:"aadhaar"`
	PIN      string `json:"pin"`
}

var (
	namePattern    = regexp.MustCompile(`^[A-Za-z ]+$`)
	mobilePattern  = regexp.MustCompile(`^[6-9]\d{9}$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	aadhaarPattern = regexp.MustCompile(`^\d{12}$`)
	pinPattern     = regexp.MustCompile(`^\d{4}$`)
	dobPattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

// Validate checks every field and reports all problems at once so the
// caller can re-enter the form in one pass.
func (in RegisterInput) Validate() error {
	var problems []string
	if !namePattern.MatchString(in.FullName) {
		problems = append(problems, "invalid name")
	}
	if !dobPattern.MatchString(in.DOB) {
		problems = append(problems, "invalid date of birth")
	}
	if !mobilePattern.MatchString(in.Mobile) {
		problems = append(problems, "invalid mobile")
	}
	if !govalidator.IsEmail(in.Email) {
		problems = append(problems, "invalid email")
	}
	if !panPattern.MatchString(strings.ToUpper(in.PAN)) {
		problems = append(problems, "invalid PAN")
	}
	if !aadhaarPattern.MatchString(in.Aadhaar) {
		problems = append(problems, "invalid Aadhaar")
	}
	if !pinPattern.MatchString(in.PIN) {
		problems = append(problems, "invalid PIN")
	}
	if len(problems) > 0 {
		return dErrors.New(dErrors.CodeValidation, strings.Join(problems, "; "))
	}
	return nil
}
