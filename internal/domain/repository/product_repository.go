// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"foamstock/internal/domain/entity"
	"foamstock/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for product persistence.
var (
	// ErrProductNotFound is returned when a product is not found.
	ErrProductNotFound = errors.New("product not found")
	// ErrDuplicateSKU is returned when a product with the same SKU already exists.
	ErrDuplicateSKU = errors.New("product with this SKU already exists")
)

// ProductFilter narrows product list queries.
type ProductFilter struct {
	Category        entity.Category
	SupplierID      *uuid.UUID
	MinPrice        *decimal.Decimal
	MaxPrice        *decimal.Decimal
	Search          string
	IncludeInactive bool
	Limit           int
	Offset          int
}

// CategoryAggregate is the per-category inventory rollup used by the
// dashboard inventory chart and valuation figures.
type CategoryAggregate struct {
	Category     entity.Category
	ProductCount int64
	UnitsInStock int64
	// Valuation is unit cost times units in stock summed over the category.
	Valuation decimal.Decimal
	// RetailValue is selling price times units in stock summed over the category.
	RetailValue decimal.Decimal
}

// ProductRepository defines the interface for product-related database operations.
type ProductRepository interface {
	// CreateProduct persists a new product.
	CreateProduct(ctx context.Context, product *entity.Product) error

	// FindProductByID retrieves a product by its unique ID.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindProductByIDForUpdate retrieves a product holding a row lock until the
	// surrounding transaction ends. Only meaningful inside a TransactionManager
	// execution.
	FindProductByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// ListProducts retrieves products matching the filter along with the total
	// count before pagination.
	ListProducts(ctx context.Context, filter ProductFilter) ([]*entity.Product, int64, error)

	// UpdateProduct persists changes to an existing product.
	UpdateProduct(ctx context.Context, product *entity.Product) error

	// SetStock writes the authoritative stock counter and optionally stamps the
	// last-sold or last-restocked time.
	SetStock(ctx context.Context, id uuid.UUID, stock int, soldAt, restockedAt *time.Time) error

	// DeactivateProduct soft-deletes a product.
	DeactivateProduct(ctx context.Context, id uuid.UUID) error

	// FindLowStockProducts retrieves active products at or below their minimum
	// stock level, out-of-stock items included.
	FindLowStockProducts(ctx context.Context) ([]*entity.Product, error)

	// MattressDimensionOptions returns the distinct thickness and density values
	// across active mattresses, for catalog filter dropdowns.
	MattressDimensionOptions(ctx context.Context) (thicknesses, densities []float64, err error)

	// AggregateByCategory rolls up stock counts and valuation per category over
	// active products.
	AggregateByCategory(ctx context.Context) ([]CategoryAggregate, error)
}
