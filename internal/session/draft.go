// Package session holds the in-progress application form between steps.
// The draft lives under the token's session id and expires with it, so a
// fresh login always starts from a clean form.
package session

import (
	"context"

	"aurum/internal/application"
	"aurum/internal/identity"
)

// Draft accumulates the multi-step form: ornaments first, then loan terms,
// then the identity fields extracted from the uploaded document.
type Draft struct {
	CustomerID    string                     `json:"customer_id"`
	Ornaments     []application.OrnamentItem `json:"ornaments,omitempty"`
	Amount        int64                      `json:"amount,omitempty"`
	TenureMonths  int                        `json:"tenure_months,omitempty"`
	Extracted     identity.Extracted         `json:"extracted,omitempty"`
	FailureReason string                     `json:"failure_reason,omitempty"`
}

// DraftStore keeps one draft per session id. Load returns sentinel.ErrNotFound
// for sessions with no draft yet; Clear on a missing draft is a no-op.
type DraftStore interface {
	Save(ctx context.Context, sessionID string, d Draft) error
	Load(ctx context.Context, sessionID string) (Draft, error)
	Clear(ctx context.Context, sessionID string) error
}
