// Package httptransport is the thin HTTP layer over the domain services.
// Handlers decode, delegate, and translate errors; business rules live in
// the services.
package httptransport

import (
	"context"
	"log/slog"
	"time"

	"aurum/internal/application"
	"aurum/internal/audit"
	"aurum/internal/customer"
	"aurum/internal/jwttoken"
	"aurum/internal/notification"
	"aurum/internal/officer"
	"aurum/internal/platform/metrics"
	"aurum/internal/platform/middleware"
	"aurum/internal/session"
	"aurum/pkg/domain"
)

// CustomerService covers the customer-facing account operations.
type CustomerService interface {
	Register(ctx context.Context, in customer.RegisterInput) (customer.Customer, error)
	Authenticate(ctx context.Context, mobile, pin string) (customer.Customer, error)
	Get(ctx context.Context, id domain.CustomerID) (customer.Customer, error)
}

// OfficerService authenticates branch staff.
type OfficerService interface {
	Authenticate(ctx context.Context, empCode, pin string) (officer.Officer, error)
}

// ApplicationService drives the application lifecycle.
//
//go:generate mockgen -source=handler.go -destination=mocks/application-mocks.go -package=mocks ApplicationService
type ApplicationService interface {
	Submit(ctx context.Context, in application.SubmitInput) (application.Application, error)
	Get(ctx context.Context, id domain.ApplicationID) (application.Application, error)
	ListByCustomer(ctx context.Context, id domain.CustomerID) ([]application.Application, error)
	ListPending(ctx context.Context) ([]application.Application, error)
	PickUp(ctx context.Context, id domain.ApplicationID, officerName string) (application.Application, error)
	ReviewBundle(ctx context.Context, id domain.ApplicationID) (application.Review, error)
	Decide(ctx context.Context, id domain.ApplicationID, officerName string, in application.DecideInput) (application.Application, error)
}

// NotificationReader lists a customer's notifications.
type NotificationReader interface {
	ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]notification.Notification, error)
}

// AuditReader lists an application's audit trail.
type AuditReader interface {
	List(ctx context.Context, appID domain.ApplicationID) ([]audit.Entry, error)
}

// TokenIssuer signs access tokens for authenticated actors.
type TokenIssuer interface {
	Generate(actorID, actorName, role string, expiresIn time.Duration) (string, *jwttoken.Claims, error)
}

// Handler holds the services behind the HTTP surface.
type Handler struct {
	logger        *slog.Logger
	metrics       *metrics.Metrics
	customers     CustomerService
	officers      OfficerService
	applications  ApplicationService
	notifications NotificationReader
	auditTrail    AuditReader
	drafts        session.DraftStore
	tokens        TokenIssuer
	validator     middleware.JWTValidator
	sessionTTL    time.Duration
}

// Config collects the handler's dependencies.
type Config struct {
	Logger        *slog.Logger
	Metrics       *metrics.Metrics
	Customers     CustomerService
	Officers      OfficerService
	Applications  ApplicationService
	Notifications NotificationReader
	AuditTrail    AuditReader
	Drafts        session.DraftStore
	Tokens        TokenIssuer
	Validator     middleware.JWTValidator
	SessionTTL    time.Duration
}

func New(cfg Config) *Handler {
	return &Handler{
		logger:        cfg.Logger,
		metrics:       cfg.Metrics,
		customers:     cfg.Customers,
		officers:      cfg.Officers,
		applications:  cfg.Applications,
		notifications: cfg.Notifications,
		auditTrail:    cfg.AuditTrail,
		drafts:        cfg.Drafts,
		tokens:        cfg.Tokens,
		validator:     cfg.Validator,
		sessionTTL:    cfg.SessionTTL,
	}
}
