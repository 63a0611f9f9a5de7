package repository

import (
	"context"

	"foamstock/internal/domain/entity"
	"foamstock/internal/errors"

	"github.com/google/uuid"
)

// ErrSupplierNotFound is returned when a supplier is not found.
var ErrSupplierNotFound = errors.New("supplier not found")

// SupplierFilter narrows supplier list queries.
type SupplierFilter struct {
	Search          string
	IncludeInactive bool
	Limit           int
	Offset          int
}

// SupplierRepository defines the interface for supplier-related database operations.
type SupplierRepository interface {
	// CreateSupplier persists a new supplier.
	CreateSupplier(ctx context.Context, supplier *entity.Supplier) error

	// FindSupplierByID retrieves a supplier by its unique ID.
	FindSupplierByID(ctx context.Context, id uuid.UUID) (*entity.Supplier, error)

	// ListSuppliers retrieves suppliers matching the filter along with the total
	// count before pagination.
	ListSuppliers(ctx context.Context, filter SupplierFilter) ([]*entity.Supplier, int64, error)

	// UpdateSupplier persists changes to an existing supplier.
	UpdateSupplier(ctx context.Context, supplier *entity.Supplier) error

	// AppendSuppliedProduct adds a product to the supplier's supplied list,
	// ignoring duplicates.
	AppendSuppliedProduct(ctx context.Context, supplierID, productID uuid.UUID) error

	// DeactivateSupplier soft-deletes a supplier.
	DeactivateSupplier(ctx context.Context, id uuid.UUID) error
}
