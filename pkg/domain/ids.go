// Package domain holds typed identifiers shared across feature packages.
// Typed IDs prevent cross-entity assignment at compile time; constructors
// enforce format at trust boundaries.
package domain

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	dErrors "aurum/pkg/domain-errors"
)

// CustomerID identifies a registered customer. Format: UUID string.
type CustomerID string

// OfficerID identifies a loan officer. Format: free-form employee record id
// (seed data uses values like "OFF001").
type OfficerID string

// ApplicationID identifies a loan application. Format: "GL-" followed by
// eight uppercase hex characters, assigned at submission.
type ApplicationID string

var applicationIDPattern = regexp.MustCompile(`^GL-[0-9A-F]{8}$`)

// NewCustomerID returns a fresh customer id.
func NewCustomerID() CustomerID {
	return CustomerID(uuid.NewString())
}

// NewApplicationID returns a fresh application reference id.
func NewApplicationID() ApplicationID {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return ApplicationID("GL-" + hex[:8])
}

// ParseCustomerID validates external input as a customer id.
func ParseCustomerID(s string) (CustomerID, error) {
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "customer id cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil || parsed == uuid.Nil {
		return "", dErrors.New(dErrors.CodeValidation, "invalid customer id")
	}
	return CustomerID(parsed.String()), nil
}

// ParseApplicationID validates external input as an application id.
func ParseApplicationID(s string) (ApplicationID, error) {
	if !applicationIDPattern.MatchString(s) {
		return "", dErrors.New(dErrors.CodeValidation, "invalid application id")
	}
	return ApplicationID(s), nil
}

// ParseOfficerID validates external input as an officer id.
func ParseOfficerID(s string) (OfficerID, error) {
	if strings.TrimSpace(s) == "" {
		return "", dErrors.New(dErrors.CodeValidation, "officer id cannot be empty")
	}
	return OfficerID(s), nil
}

func (id CustomerID) String() string    { return string(id) }
func (id OfficerID) String() string     { return string(id) }
func (id ApplicationID) String() string { return string(id) }
