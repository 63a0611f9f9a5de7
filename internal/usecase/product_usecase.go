package usecase

import (
	"context"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProductInput carries the fields for catalog creation. SKU is
// generated when absent; stock thresholds fall back to configured defaults.
type CreateProductInput struct {
	Name          string
	Category      entity.Category
	Dimensions    *entity.Dimensions
	SupplierID    uuid.UUID
	UnitCost      decimal.Decimal
	SellingPrice  decimal.Decimal
	SKU           string
	Description   string
	Tags          []string
	InitialStock  int
	MinStockLevel *int
	MaxStockLevel *int
	StockAlerts   *bool
}

// UpdateProductInput carries optional catalog changes; nil fields are left
// untouched.
type UpdateProductInput struct {
	Name         *string
	Dimensions   *entity.Dimensions
	UnitCost     *decimal.Decimal
	SellingPrice *decimal.Decimal
	Description  *string
	Tags         []string
	StockAlerts  *bool
}

// ProductUsecase defines the interface for product catalog use cases.
type ProductUsecase interface {
	// ListProducts retrieves products matching the filter with the total count
	// before pagination.
	ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// CreateProduct validates the supplier, generates a SKU when absent and
	// records the product on the supplier's supplied list.
	CreateProduct(ctx context.Context, input CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies the provided catalog changes.
	UpdateProduct(ctx context.Context, id uuid.UUID, input UpdateProductInput) (*entity.Product, error)

	// DeleteProduct soft-deletes a product.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// Categories lists the valid product categories.
	Categories(ctx context.Context) []entity.Category

	// MattressThicknessOptions lists distinct thickness values across active
	// mattresses.
	MattressThicknessOptions(ctx context.Context) ([]float64, error)

	// MattressDensityOptions lists distinct density values across active
	// mattresses.
	MattressDensityOptions(ctx context.Context) ([]float64, error)

	// UpdateThresholds changes the min/max stock levels used for status
	// derivation and alerting.
	UpdateThresholds(ctx context.Context, id uuid.UUID, minLevel, maxLevel *int) (*entity.Product, error)
}
