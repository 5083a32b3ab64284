package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"aurum/internal/audit"
	"aurum/internal/customer"
	"aurum/internal/identity"
	"aurum/internal/notification"
	"aurum/internal/policy"
	"aurum/internal/visit"
	"aurum/pkg/domain"
	dErrors "aurum/pkg/domain-errors"
	"aurum/pkg/platform/sentinel"
)

// CustomerDirectory resolves the declared identity an application is
// reviewed against.
type CustomerDirectory interface {
	Get(ctx context.Context, id domain.CustomerID) (customer.Customer, error)
}

// Notifier delivers customer-facing messages about an application.
type Notifier interface {
	Notify(ctx context.Context, n notification.Notification) error
}

// Auditor records officer decisions.
type Auditor interface {
	Emit(ctx context.Context, e audit.Entry) error
}

// SubmitInput is the completed application form.
type SubmitInput struct {
	CustomerID    domain.CustomerID
	Ornaments     []OrnamentItem
	Amount        int64
	TenureMonths  int
	Extracted     identity.Extracted
	FailureReason string
}

// VisitRequest is the branch appointment an officer proposes on approval.
type VisitRequest struct {
	Branch string `json:"branch"`
	Date   string `json:"date"`
	Time   string `json:"time"`
}

// DecideInput carries the officer's verdict.
type DecideInput struct {
	Decision Decision      `json:"decision"`
	Remarks  string        `json:"remarks"`
	Visit    *VisitRequest `json:"visit,omitempty"`
}

// Review bundles everything an officer needs to judge one application.
// Risk is recomputed from stored fields on every call, never cached.
type Review struct {
	Application  Application
	CustomerName string
	Declared     identity.Declared
	Match        identity.Result
}

// Service drives the application lifecycle.
type Service struct {
	store     Store
	customers CustomerDirectory
	matcher   identity.Matcher
	notifier  Notifier
	auditor   Auditor
	visits    visit.Store
	logger    *slog.Logger
	now       func() time.Time
}

func NewService(store Store, customers CustomerDirectory, matcher identity.Matcher,
	notifier Notifier, auditor Auditor, visits visit.Store, logger *slog.Logger) *Service {
	return &Service{
		store:     store,
		customers: customers,
		matcher:   matcher,
		notifier:  notifier,
		auditor:   auditor,
		visits:    visits,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates the form against the lending policy and persists a new
// SUBMITTED application. A policy breach persists nothing.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (Application, error) {
	if _, err := s.customers.Get(ctx, in.CustomerID); err != nil {
		return Application{}, err
	}
	weight, carat, err := valueOrnaments(in.Ornaments)
	if err != nil {
		return Application{}, err
	}
	goldValue := policy.GoldValue(weight, carat)
	if err := policy.CheckLoanTerms(in.Amount, in.TenureMonths, goldValue); err != nil {
		return Application{}, err
	}

	app := Application{
		ID:             domain.NewApplicationID(),
		CustomerID:     in.CustomerID,
		Amount:         in.Amount,
		TenureMonths:   in.TenureMonths,
		NetWeightGrams: weight,
		Carat:          carat,
		Status:         StatusSubmitted,
		FailureReason:  strings.TrimSpace(in.FailureReason),
		Extracted:      in.Extracted,
		CreatedAt:      s.now().UTC(),
	}
	if err := s.store.Create(ctx, app); err != nil {
		return Application{}, err
	}
	s.logger.Info("application submitted",
		"application_id", app.ID, "customer_id", app.CustomerID,
		"amount", app.Amount, "tenure_months", app.TenureMonths)
	return app, nil
}

// valueOrnaments reduces the declared items to the figures the policy
// needs: total net weight, and the lowest carat so the valuation never
// flatters mixed-purity collateral.
func valueOrnaments(items []OrnamentItem) (float64, int, error) {
	if len(items) == 0 {
		return 0, 0, dErrors.New(dErrors.CodeValidation, "at least one ornament is required")
	}
	var (
		weight   float64
		minCarat int
	)
	for i, it := range items {
		if it.Qty < 1 {
			return 0, 0, dErrors.Newf(dErrors.CodeValidation, "ornament %d: quantity must be at least 1", i+1)
		}
		if it.NetWeightGrams <= 0 {
			return 0, 0, dErrors.Newf(dErrors.CodeValidation, "ornament %d: net weight must be positive", i+1)
		}
		if !policy.SupportedCarat(it.Carat) {
			return 0, 0, dErrors.Newf(dErrors.CodeValidation, "ornament %d: unsupported carat %d", i+1, it.Carat)
		}
		weight += it.NetWeightGrams
		if minCarat == 0 || it.Carat < minCarat {
			minCarat = it.Carat
		}
	}
	return weight, minCarat, nil
}

// Get resolves one application.
func (s *Service) Get(ctx context.Context, id domain.ApplicationID) (Application, error) {
	app, err := s.store.FindByID(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return Application{}, dErrors.New(dErrors.CodeNotFound, "application not found")
	}
	return app, err
}

// ListByCustomer lists a customer's applications in submission order.
func (s *Service) ListByCustomer(ctx context.Context, id domain.CustomerID) ([]Application, error) {
	return s.store.ListByCustomer(ctx, id)
}

// ListPending lists the officer work queue: SUBMITTED and UNDER_REVIEW
// applications in submission order.
func (s *Service) ListPending(ctx context.Context) ([]Application, error) {
	return s.store.ListPending(ctx)
}

// PickUp moves a SUBMITTED application to UNDER_REVIEW. Picking up an
// application already under review is a no-op, so two officers racing for
// the same row both land on the same state.
func (s *Service) PickUp(ctx context.Context, id domain.ApplicationID, officerName string) (Application, error) {
	app, err := s.store.Update(ctx, id, func(app Application) (Application, error) {
		switch app.Status {
		case StatusSubmitted:
			app.Status = StatusUnderReview
			return app, nil
		case StatusUnderReview:
			return app, nil
		default:
			return Application{}, dErrors.Newf(dErrors.CodeInvalidTransition,
				"application %s is already %s", app.ID, app.Status)
		}
	})
	if errors.Is(err, sentinel.ErrNotFound) {
		return Application{}, dErrors.New(dErrors.CodeNotFound, "application not found")
	}
	if err != nil {
		return Application{}, err
	}
	s.logger.Info("application picked up for review",
		"application_id", app.ID, "officer", officerName)
	return app, nil
}

// ReviewBundle assembles the application, the declared identity, and a
// freshly computed match result for the officer's screen.
func (s *Service) ReviewBundle(ctx context.Context, id domain.ApplicationID) (Review, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return Review{}, err
	}
	c, err := s.customers.Get(ctx, app.CustomerID)
	if err != nil {
		return Review{}, err
	}
	declared := identity.Declared{Name: c.FullName, DOB: c.DOB, IDLast4: c.AadhaarLast4()}
	return Review{
		Application:  app,
		CustomerName: c.FullName,
		Declared:     declared,
		Match:        s.matcher.Match(declared, app.Extracted),
	}, nil
}

// Decide applies the officer's verdict to an UNDER_REVIEW application.
//
// A rejection requires non-empty remarks and lands the application in
// REJECTED with a LOAN_OFFICER notification and an audit entry. An
// approval recomputes identity risk first: HIGH risk refuses the
// transition outright, with no state change and no side effects; otherwise
// the visit request is validated, a slot is booked, and the application
// lands in VISIT_SCHEDULED with a SYSTEM notification and an audit entry.
func (s *Service) Decide(ctx context.Context, id domain.ApplicationID, officerName string, in DecideInput) (Application, error) {
	switch in.Decision {
	case DecisionReject:
		return s.reject(ctx, id, officerName, in.Remarks)
	case DecisionApproveVisit:
		return s.approveForVisit(ctx, id, officerName, in.Visit)
	default:
		return Application{}, dErrors.Newf(dErrors.CodeValidation, "unknown decision %q", in.Decision)
	}
}

func (s *Service) reject(ctx context.Context, id domain.ApplicationID, officerName, remarks string) (Application, error) {
	remarks = strings.TrimSpace(remarks)
	if remarks == "" {
		return Application{}, dErrors.New(dErrors.CodeValidation, "rejection remarks are required")
	}
	app, err := s.transition(ctx, id, StatusRejected)
	if err != nil {
		return Application{}, err
	}
	if err := s.notifier.Notify(ctx, notification.Notification{
		CustomerID:    app.CustomerID,
		ApplicationID: app.ID,
		Sender:        notification.SenderOfficer,
		Message:       "Loan application rejected. Reason: " + remarks,
	}); err != nil {
		return Application{}, err
	}
	if err := s.auditor.Emit(ctx, audit.Entry{
		Actor:         officerName,
		ApplicationID: app.ID,
		Action:        audit.ActionRejected,
		Remarks:       remarks,
	}); err != nil {
		return Application{}, err
	}
	s.logger.Info("application rejected",
		"application_id", app.ID, "officer", officerName)
	return app, nil
}

func (s *Service) approveForVisit(ctx context.Context, id domain.ApplicationID, officerName string, req *VisitRequest) (Application, error) {
	bundle, err := s.ReviewBundle(ctx, id)
	if err != nil {
		return Application{}, err
	}
	if bundle.Application.Status != StatusUnderReview {
		return Application{}, dErrors.Newf(dErrors.CodeInvalidTransition,
			"application %s is %s, not under review", id, bundle.Application.Status)
	}
	if bundle.Match.Risk == identity.RiskHigh {
		return Application{}, dErrors.New(dErrors.CodeInvalidTransition,
			"identity risk is HIGH; application cannot be approved for a branch visit")
	}
	slot, err := s.buildSlot(id, req)
	if err != nil {
		return Application{}, err
	}

	// The slot is booked before the status flips: if the append fails the
	// application stays UNDER_REVIEW, and if the transition then fails the
	// orphan slot row is inert because nothing reads slots for an
	// application that is not VISIT_SCHEDULED.
	if err := s.visits.Schedule(ctx, slot); err != nil {
		return Application{}, err
	}
	app, err := s.transition(ctx, id, StatusVisitScheduled)
	if err != nil {
		return Application{}, err
	}
	if err := s.notifier.Notify(ctx, notification.Notification{
		CustomerID:    app.CustomerID,
		ApplicationID: app.ID,
		Sender:        notification.SenderSystem,
		Message: fmt.Sprintf("Identity verified. Branch visit scheduled at %s on %s at %s.",
			slot.Branch, slot.Date, slot.Time),
	}); err != nil {
		return Application{}, err
	}
	if err := s.auditor.Emit(ctx, audit.Entry{
		Actor:         officerName,
		ApplicationID: app.ID,
		Action:        audit.ActionMatchConfirmed,
		Remarks:       "Identity match confirmed. Proceed to branch visit.",
	}); err != nil {
		return Application{}, err
	}
	s.logger.Info("branch visit scheduled",
		"application_id", app.ID, "officer", officerName,
		"branch", slot.Branch, "date", slot.Date)
	return app, nil
}

func (s *Service) buildSlot(id domain.ApplicationID, req *VisitRequest) (visit.Slot, error) {
	if req == nil {
		return visit.Slot{}, dErrors.New(dErrors.CodeValidation, "a visit request is required to approve")
	}
	code, ok := visit.BranchCode(req.Branch)
	if !ok {
		return visit.Slot{}, dErrors.Newf(dErrors.CodeValidation, "unknown branch %q", req.Branch)
	}
	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return visit.Slot{}, dErrors.New(dErrors.CodeValidation, "visit date must be yyyy-mm-dd")
	}
	today := s.now().UTC().Truncate(24 * time.Hour)
	if date.Before(today) {
		return visit.Slot{}, dErrors.New(dErrors.CodeValidation, "visit date cannot be in the past")
	}
	if _, err := time.Parse("15:04", req.Time); err != nil {
		return visit.Slot{}, dErrors.New(dErrors.CodeValidation, "visit time must be HH:MM")
	}
	return visit.Slot{
		ApplicationID: id,
		Branch:        req.Branch,
		BranchCode:    code,
		Date:          req.Date,
		Time:          req.Time,
		Status:        visit.StatusScheduled,
	}, nil
}

// transition moves an UNDER_REVIEW application to a terminal state.
func (s *Service) transition(ctx context.Context, id domain.ApplicationID, to Status) (Application, error) {
	app, err := s.store.Update(ctx, id, func(app Application) (Application, error) {
		if app.Status != StatusUnderReview {
			return Application{}, dErrors.Newf(dErrors.CodeInvalidTransition,
				"application %s is %s, not under review", app.ID, app.Status)
		}
		app.Status = to
		return app, nil
	})
	if errors.Is(err, sentinel.ErrNotFound) {
		return Application{}, dErrors.New(dErrors.CodeNotFound, "application not found")
	}
	return app, err
}
