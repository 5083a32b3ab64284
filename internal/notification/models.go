// Package notification is the write-only channel from the application
// lifecycle to the customer. Rows are append-only and immutable.
package notification

import (
	"time"

	"aurum/pkg/domain"
)

// Sender identifies who a notification speaks for.
type Sender string

const (
	SenderSystem  Sender = "SYSTEM"
	SenderOfficer Sender = "LOAN_OFFICER"
)

// Notification is one message to a customer about an application.
type Notification struct {
	CustomerID    domain.CustomerID
	ApplicationID domain.ApplicationID
	Sender        Sender
	Message       string
	CreatedAt     time.Time
}
