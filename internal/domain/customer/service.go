package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"customer-management/internal/event"
	"customer-management/internal/infrastructure/monitoring"
)

const (
	inputValidationPassed = "Input validation passed"
	customerNotFound      = "Customer not found by repository"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, candidate *Customer) (*Customer, error)
	GetCustomer(ctx context.Context, customerID string) (*Customer, error)
	ListCustomers(ctx context.Context, skip, limit int) ([]*Customer, error)
	UpdateCustomer(ctx context.Context, customerID string, upd Update) (*Customer, error)
	UpdateCustomerByID(ctx context.Context, id int64, upd Update) (*Customer, error)
	DeleteCustomer(ctx context.Context, customerID string) error
}

var _ CustomerService = (*customerService)(nil)

type ServiceOption func(*customerService)

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *customerService) {
		s.now = now
	}
}

type customerService struct {
	repo   CustomerRepository
	pub    event.EventPublisher
	logger *slog.Logger
	now    func() time.Time
}

func NewCustomerService(repo CustomerRepository, eventPublisher event.EventPublisher, logger *slog.Logger, opts ...ServiceOption) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		logger.Warn("Warning: No event publisher provided to NewCustomerService, events will be dropped")
		eventPublisher = event.NopPublisher{}
	}

	s := &customerService{
		repo:   repo,
		pub:    eventPublisher,
		logger: logger.With(slog.String("component", "customerService")),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func NewCustomerEventPayload(c *Customer) event.CustomerEventPayload {
	if c == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		ID:                  c.ID,
		CustomerID:          c.CustomerID,
		Shop:                string(c.Shop),
		Source:              string(c.Source),
		CustomerType:        string(c.CustomerType),
		Demand:              c.Demand,
		DemandDescription:   c.DemandDescription,
		CustomerStatus:      string(c.CustomerStatus),
		ExpectedOrderDate:   c.ExpectedOrderDate,
		ExpectedOrderAmount: c.ExpectedOrderAmount,
		CreationDate:        c.CreationDate,
		LastModifiedDate:    c.LastModifiedDate,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, candidate *Customer) (*Customer, error) {
	if candidate == nil {
		return nil, Validate(nil)
	}
	logger := s.logger.With(slog.String("customerID", candidate.CustomerID))
	logger.InfoContext(ctx, "Attempting to create new customer")

	c := *candidate
	c.ID = 0
	if err := Validate(&c); err != nil {
		logger.WarnContext(ctx, "Validation failed for new customer", slog.Any("error", err))
		return nil, err
	}
	logger.DebugContext(ctx, inputValidationPassed)

	c.Stamp(s.now())

	if err := s.repo.Create(ctx, &c); err != nil {
		if errors.Is(err, ErrDuplicateCustomerID) {
			logger.WarnContext(ctx, "Customer ID already in use")
			return nil, err
		}
		logger.ErrorContext(ctx, "Repository failed to create customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to create customer %s: %w", c.CustomerID, err)
	}
	monitoring.RecordCustomerOperation("create")

	logger = logger.With(slog.Int64("id", c.ID))
	logger.InfoContext(ctx, "Successfully created new customer, publishing creation event")
	if err := s.pub.PublishCustomerCreated(ctx, event.NewCustomerCreatedEvent(NewCustomerEventPayload(&c))); err != nil {
		monitoring.RecordEventPublishFailure("customer.created")
		logger.ErrorContext(ctx, "Customer created, but FAILED to publish creation event", slog.Any("error", err))
	}

	return &c, nil
}

func (s *customerService) GetCustomer(ctx context.Context, customerID string) (*Customer, error) {
	logger := s.logger.With(slog.String("customerID", customerID))
	logger.DebugContext(ctx, "Attempting to get customer")

	c, err := s.repo.FindByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return nil, err
		}
		logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return c, nil
}

func (s *customerService) ListCustomers(ctx context.Context, skip, limit int) ([]*Customer, error) {
	if err := ValidatePage(skip, limit); err != nil {
		s.logger.WarnContext(ctx, "Invalid pagination", slog.Int("skip", skip), slog.Int("limit", limit))
		return nil, err
	}

	customers, err := s.repo.FindAll(ctx, skip, limit)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []*Customer{}
	}

	s.logger.DebugContext(ctx, "Successfully listed customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, customerID string, upd Update) (*Customer, error) {
	return s.updateCustomer(ctx, ByCustomerID(customerID), upd)
}

func (s *customerService) UpdateCustomerByID(ctx context.Context, id int64, upd Update) (*Customer, error) {
	return s.updateCustomer(ctx, ByID(id), upd)
}

// updateCustomer is shared by both update entry points; only the lookup key differs.
func (s *customerService) updateCustomer(ctx context.Context, key LookupKey, upd Update) (*Customer, error) {
	logger := s.logger.With(slog.String("key", key.String()))
	logger.InfoContext(ctx, "Attempting to update customer")

	if err := upd.Validate(); err != nil {
		logger.WarnContext(ctx, "Validation failed for update payload", slog.Any("error", err))
		return nil, err
	}

	updated, err := s.repo.Update(ctx, key, func(c *Customer) error {
		return upd.Merge(c, s.now())
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			logger.WarnContext(ctx, customerNotFound)
			return nil, err
		case isValidation(err):
			logger.WarnContext(ctx, "Merged customer failed validation", slog.Any("error", err))
			return nil, err
		}
		logger.ErrorContext(ctx, "Repository failed to update customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to update customer %s: %w", key, err)
	}
	monitoring.RecordCustomerOperation("update")

	logger.InfoContext(ctx, "Successfully updated customer, publishing update event")
	if err := s.pub.PublishCustomerUpdated(ctx, event.NewCustomerUpdatedEvent(NewCustomerEventPayload(updated))); err != nil {
		monitoring.RecordEventPublishFailure("customer.updated")
		logger.ErrorContext(ctx, "Customer updated, but FAILED to publish update event", slog.Any("error", err))
	}

	return updated, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, customerID string) error {
	logger := s.logger.With(slog.String("customerID", customerID))
	logger.InfoContext(ctx, "Attempting to delete customer")

	if err := s.repo.Delete(ctx, customerID); err != nil {
		if errors.Is(err, ErrNotFound) {
			logger.WarnContext(ctx, customerNotFound)
			return err
		}
		logger.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %s: %w", customerID, err)
	}
	monitoring.RecordCustomerOperation("delete")

	logger.InfoContext(ctx, "Successfully deleted customer, publishing deletion event")
	if err := s.pub.PublishCustomerDeleted(ctx, event.NewCustomerDeletedEvent(customerID)); err != nil {
		monitoring.RecordEventPublishFailure("customer.deleted")
		logger.ErrorContext(ctx, "Customer deleted, but FAILED to publish deletion event", slog.Any("error", err))
	}
	return nil
}
