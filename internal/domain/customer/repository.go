package customer

import (
	"context"
	"fmt"

	"customer-management/internal/pkg/apperrors"
)

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

var (
	ErrNotFound = fmt.Errorf("customer not found: %w", apperrors.ErrNotFound)

	ErrDuplicateCustomerID = fmt.Errorf("customer_id already exists: %w", apperrors.ErrAlreadyExists)
)

// MutateFunc edits a locked record in place. Returning an error aborts the update.
type MutateFunc func(c *Customer) error

type CustomerRepository interface {
	// Create inserts c and fills in its ID. Timestamps are taken from c.
	Create(ctx context.Context, c *Customer) error

	FindByCustomerID(ctx context.Context, customerID string) (*Customer, error)

	FindAll(ctx context.Context, skip, limit int) ([]*Customer, error)

	// Update locks the record matching key for the duration of one transaction,
	// runs mutate on it and persists the result. Nothing is written when mutate fails.
	Update(ctx context.Context, key LookupKey, mutate MutateFunc) (*Customer, error)

	Delete(ctx context.Context, customerID string) error
}
