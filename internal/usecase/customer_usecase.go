package usecase

import (
	"context"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateCustomerInput carries the fields for customer creation.
type CreateCustomerInput struct {
	Name        string
	Email       string
	Phone       string
	Type        entity.CustomerType
	Address     entity.Address
	CreditLimit decimal.Decimal
	Notes       string
	CreatedBy   uuid.UUID
}

// UpdateCustomerInput carries optional customer changes; nil fields are left
// untouched.
type UpdateCustomerInput struct {
	Name        *string
	Email       *string
	Phone       *string
	Type        *entity.CustomerType
	Address     *entity.Address
	CreditLimit *decimal.Decimal
	Notes       *string
	IsActive    *bool
}

// CustomerUsecase defines the interface for customer management use cases.
type CustomerUsecase interface {
	// ListCustomers retrieves customers matching the filter.
	ListCustomers(ctx context.Context, filter repository.CustomerFilter) ([]*entity.Customer, int64, error)

	// GetCustomer retrieves a single customer.
	GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error)

	// CreateCustomer persists a new customer.
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*entity.Customer, error)

	// UpdateCustomer applies the provided changes.
	UpdateCustomer(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*entity.Customer, error)

	// DeleteCustomer soft-deletes a customer.
	DeleteCustomer(ctx context.Context, id uuid.UUID) error

	// PurchaseHistory retrieves a customer's sales, newest first.
	PurchaseHistory(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Sale, int64, error)

	// TopCustomers retrieves the highest-spending customers.
	TopCustomers(ctx context.Context, limit int) ([]*entity.Customer, error)
}
