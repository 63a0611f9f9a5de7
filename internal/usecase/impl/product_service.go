package impl

import (
	"context"
	"fmt"
	"time"

	"foamstock/config"
	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo  repository.ProductRepository
	supplierRepo repository.SupplierRepository
	config       *config.Config
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	SupplierRepo repository.SupplierRepository
	Config       *config.Config
}

// NewProductService creates a new product service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		supplierRepo: params.SupplierRepo,
		config:       params.Config,
	}
}

// ListProducts retrieves products matching the filter with the total count
// before pagination.
func (s *productService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	if filter.Category != "" && !filter.Category.IsValid() {
		return nil, 0, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown category %q", filter.Category))
	}

	products, total, err := s.productRepo.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	return products, total, nil
}

// GetProduct retrieves a single product.
func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// CreateProduct validates the supplier, generates a SKU when absent and
// records the product on the supplier's supplied list.
func (s *productService) CreateProduct(ctx context.Context, input usecase.CreateProductInput) (*entity.Product, error) {
	if !input.Category.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails(
			fmt.Sprintf("unknown category %q", input.Category))
	}
	if input.Category == entity.CategoryMattress {
		if input.Dimensions == nil || input.Dimensions.Thickness <= 0 || input.Dimensions.Density <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				"mattresses require thickness and density")
		}
	}
	if input.UnitCost.IsNegative() || input.SellingPrice.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("prices must not be negative")
	}
	if input.InitialStock < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("initial stock must not be negative")
	}

	supplier, err := s.supplierRepo.FindSupplierByID(ctx, input.SupplierID)
	if err != nil {
		if errors.Is(err, repository.ErrSupplierNotFound) {
			return nil, domainerrors.ErrSupplierNotFound
		}

		return nil, errors.Wrap(err, "failed to find supplier")
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New(),
		Name:          input.Name,
		Category:      input.Category,
		Dimensions:    input.Dimensions,
		SupplierID:    supplier.ID,
		UnitCost:      input.UnitCost,
		SellingPrice:  input.SellingPrice,
		SKU:           input.SKU,
		Description:   input.Description,
		Tags:          input.Tags,
		CurrentStock:  input.InitialStock,
		MinStockLevel: s.config.Stock.DefaultMinLevel,
		MaxStockLevel: s.config.Stock.DefaultMaxLevel,
		StockAlerts:   true,
		IsActive:      true,
	}
	if product.SKU == "" {
		product.SKU = entity.NewSKU(product.Category, now)
	}
	if input.MinStockLevel != nil {
		product.MinStockLevel = *input.MinStockLevel
	}
	if input.MaxStockLevel != nil {
		product.MaxStockLevel = *input.MaxStockLevel
	}
	if input.StockAlerts != nil {
		product.StockAlerts = *input.StockAlerts
	}
	if input.InitialStock > 0 {
		restockedAt := now
		product.LastRestocked = &restockedAt
	}

	if err := s.productRepo.CreateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrDuplicateSKU) {
			return nil, domainerrors.ErrDuplicateSKU.WithDetails(product.SKU)
		}

		return nil, errors.Wrap(err, "failed to create product")
	}

	if err := s.supplierRepo.AppendSuppliedProduct(ctx, supplier.ID, product.ID); err != nil {
		return nil, errors.Wrap(err, "failed to record supplied product")
	}

	return product, nil
}

// UpdateProduct applies the provided catalog changes.
func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, input usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Dimensions != nil {
		product.Dimensions = input.Dimensions
	}
	if input.UnitCost != nil {
		if input.UnitCost.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("unit cost must not be negative")
		}
		product.UnitCost = *input.UnitCost
	}
	if input.SellingPrice != nil {
		if input.SellingPrice.IsNegative() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("selling price must not be negative")
		}
		product.SellingPrice = *input.SellingPrice
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Tags != nil {
		product.Tags = input.Tags
	}
	if input.StockAlerts != nil {
		product.StockAlerts = *input.StockAlerts
	}

	if product.RequiresDimensions() {
		if product.Dimensions == nil || product.Dimensions.Thickness <= 0 || product.Dimensions.Density <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				"mattresses require thickness and density")
		}
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct soft-deletes a product.
func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.productRepo.DeactivateProduct(ctx, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to deactivate product")
	}

	return nil
}

// Categories lists the valid product categories.
func (s *productService) Categories(_ context.Context) []entity.Category {
	return entity.AllCategories()
}

// MattressThicknessOptions lists distinct thickness values across active
// mattresses.
func (s *productService) MattressThicknessOptions(ctx context.Context) ([]float64, error) {
	thicknesses, _, err := s.productRepo.MattressDimensionOptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load mattress options")
	}

	return thicknesses, nil
}

// MattressDensityOptions lists distinct density values across active
// mattresses.
func (s *productService) MattressDensityOptions(ctx context.Context) ([]float64, error) {
	_, densities, err := s.productRepo.MattressDimensionOptions(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load mattress options")
	}

	return densities, nil
}

// UpdateThresholds changes the min/max stock levels used for status
// derivation and alerting.
func (s *productService) UpdateThresholds(ctx context.Context, id uuid.UUID, minLevel, maxLevel *int) (*entity.Product, error) {
	if minLevel == nil && maxLevel == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no thresholds provided")
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if minLevel != nil {
		if *minLevel < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("minimum stock level must not be negative")
		}
		product.MinStockLevel = *minLevel
	}
	if maxLevel != nil {
		if *maxLevel < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("maximum stock level must not be negative")
		}
		product.MaxStockLevel = *maxLevel
	}
	if product.MaxStockLevel > 0 && product.MinStockLevel > product.MaxStockLevel {
		return nil, domainerrors.ErrValidationFailed.WithDetails("minimum stock level exceeds maximum")
	}

	if err := s.productRepo.UpdateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to update thresholds")
	}

	return product, nil
}
