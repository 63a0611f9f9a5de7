package repository

import (
	"context"

	"foamstock/internal/domain/entity"
	"foamstock/internal/errors"

	"github.com/google/uuid"
)

// ErrCustomerNotFound is returned when a customer is not found.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerFilter narrows customer list queries.
type CustomerFilter struct {
	Search          string
	Type            entity.CustomerType
	IncludeInactive bool
	Limit           int
	Offset          int
}

// CustomerRepository defines the interface for customer-related database operations.
type CustomerRepository interface {
	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, customer *entity.Customer) error

	// FindCustomerByID retrieves a customer by its unique ID.
	FindCustomerByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// FindCustomerByIDForUpdate retrieves a customer holding a row lock until
	// the surrounding transaction ends.
	FindCustomerByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// ListCustomers retrieves customers matching the filter along with the
	// total count before pagination.
	ListCustomers(ctx context.Context, filter CustomerFilter) ([]*entity.Customer, int64, error)

	// UpdateCustomer persists changes to an existing customer.
	UpdateCustomer(ctx context.Context, customer *entity.Customer) error

	// DeactivateCustomer soft-deletes a customer.
	DeactivateCustomer(ctx context.Context, id uuid.UUID) error

	// TopCustomersBySpending retrieves the highest-spending active customers.
	TopCustomersBySpending(ctx context.Context, limit int) ([]*entity.Customer, error)
}
