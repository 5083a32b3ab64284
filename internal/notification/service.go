package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"aurum/pkg/domain"
)

// Publisher fans a notification out to an external sink after it has been
// durably stored. Delivery is best-effort; the store is the source of truth.
type Publisher interface {
	Publish(ctx context.Context, n Notification) error
}

// Service appends notifications and optionally relays them to a publisher.
type Service struct {
	store     Store
	publisher Publisher
	logger    *slog.Logger
	written   prometheus.Counter
}

// Option configures the Service.
type Option func(*Service)

// WithPublisher attaches an external fan-out sink.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithCounter counts successfully stored notifications.
func WithCounter(c prometheus.Counter) Option {
	return func(s *Service) { s.written = c }
}

func NewService(store Store, logger *slog.Logger, opts ...Option) *Service {
	s := &Service{store: store, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Notify stores one notification, stamping the time when unset. A publisher
// failure is logged, not surfaced: the lifecycle operation that produced the
// notification has already committed.
func (s *Service) Notify(ctx context.Context, n Notification) error {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	if err := s.store.Append(ctx, n); err != nil {
		return err
	}
	if s.written != nil {
		s.written.Inc()
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, n); err != nil {
			s.logger.WarnContext(ctx, "notification fan-out failed",
				"application_id", n.ApplicationID,
				"error", err,
			)
		}
	}
	return nil
}

// ListByCustomer returns a customer's notifications in insertion order.
func (s *Service) ListByCustomer(ctx context.Context, customerID domain.CustomerID) ([]Notification, error) {
	return s.store.ListByCustomer(ctx, customerID)
}
