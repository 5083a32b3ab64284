// Package application owns the loan-application lifecycle: submission under
// the lending policy, officer pickup, and the approve-or-reject decision
// with its side effects (visit slot, notification, audit entry).
package application

import (
	"time"

	"aurum/internal/identity"
	"aurum/pkg/domain"
)

// Status is the lifecycle state of an application. The graph is linear and
// monotonic: SUBMITTED -> UNDER_REVIEW -> VISIT_SCHEDULED | REJECTED, and
// the two end states accept no further transitions.
type Status string

const (
	StatusSubmitted      Status = "SUBMITTED"
	StatusUnderReview    Status = "UNDER_REVIEW"
	StatusVisitScheduled Status = "VISIT_SCHEDULED"
	StatusRejected       Status = "REJECTED"
)

// Terminal reports whether the status accepts no further transitions.
func (s Status) Terminal() bool {
	return s == StatusVisitScheduled || s == StatusRejected
}

// Application is a customer's loan request. Owned by this package; mutated
// only through lifecycle transitions; never deleted.
type Application struct {
	ID             domain.ApplicationID
	CustomerID     domain.CustomerID
	Amount         int64
	TenureMonths   int
	NetWeightGrams float64
	Carat          int
	Status         Status
	FailureReason  string
	Extracted      identity.Extracted
	CreatedAt      time.Time
}

// OrnamentItem is one declared piece of pledged gold.
type OrnamentItem struct {
	Type           string  `json:"type"`
	Qty            int     `json:"qty"`
	Carat          int     `json:"carat"`
	NetWeightGrams float64 `json:"net_weight_grams"`
}

// Decision is the officer's verdict on a reviewed application.
type Decision string

const (
	DecisionReject       Decision = "reject"
	DecisionApproveVisit Decision = "approve_for_visit"
)

// RejectionReasons is the catalog offered to officers; free-text remarks
// may extend but not replace a reason.
var RejectionReasons = []string{
	"Identity mismatch (Name / DOB / Aadhaar)",
	"Document unreadable or blurred",
	"Invalid or expired document",
	"Suspicious / tampered document",
	"Gold details mismatch with application",
	"Other compliance or risk concern",
}
