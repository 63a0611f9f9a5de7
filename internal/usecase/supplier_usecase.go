package usecase

import (
	"context"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateSupplierInput carries the fields for supplier creation.
type CreateSupplierInput struct {
	Name          string
	Company       string
	ContactPerson string
	Email         string
	Phone         string
	Address       entity.Address
	PaymentTerms  entity.PaymentTerms
	Rating        int
	Notes         string
}

// UpdateSupplierInput carries optional supplier changes; nil fields are left
// untouched.
type UpdateSupplierInput struct {
	Name          *string
	Company       *string
	ContactPerson *string
	Email         *string
	Phone         *string
	Address       *entity.Address
	PaymentTerms  *entity.PaymentTerms
	Rating        *int
	Notes         *string
	IsActive      *bool
}

// SupplierUsecase defines the interface for supplier management use cases.
type SupplierUsecase interface {
	// ListSuppliers retrieves suppliers matching the filter.
	ListSuppliers(ctx context.Context, filter repository.SupplierFilter) ([]*entity.Supplier, int64, error)

	// GetSupplier retrieves a single supplier.
	GetSupplier(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// CreateSupplier persists a new supplier.
	CreateSupplier(ctx context.Context, input CreateSupplierInput) (*entity.Supplier, error)

	// UpdateSupplier applies the provided changes.
	UpdateSupplier(ctx context.Context, id uuid.UUID, input UpdateSupplierInput) (*entity.Supplier, error)

	// DeleteSupplier soft-deletes a supplier.
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
}
