package postgres

import (
	"context"
	"time"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// CreateProduct persists a new product.
func (repo *productRepository) CreateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	if err := repo.db.WithContext(ctx).Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateSKU
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSupplierNotFound
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required product information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	// Update the entity with generated values
	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	return nil
}

// FindProductByID retrieves a product by its unique ID.
func (repo *productRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// FindProductByIDForUpdate retrieves a product under a FOR UPDATE row lock.
// Only meaningful when the repository is bound to an open transaction.
func (repo *productRepository) FindProductByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}
		if isSerializationFailure(err) {
			return nil, domainerrors.ErrConcurrentStockConflict
		}

		return nil, errors.Wrap(err, "failed to lock product row")
	}

	return toProductDomain(&productM), nil
}

// ListProducts retrieves products matching the filter along with the total count.
func (repo *productRepository) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, int64, error) {
	query := repo.productListQuery(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count products")
	}

	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		query = query.Offset(filter.Offset)
	}

	var productModels []*model.ProductModel
	if err := query.Order("created_at DESC").Find(&productModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, total, nil
}

func (repo *productRepository) productListQuery(ctx context.Context, filter repository.ProductFilter) *gorm.DB {
	query := repo.db.WithContext(ctx).Model(&model.ProductModel{})

	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.SupplierID != nil {
		query = query.Where("supplier_id = ?", *filter.SupplierID)
	}
	if filter.MinPrice != nil {
		query = query.Where("selling_price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("selling_price <= ?", *filter.MaxPrice)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR sku ILIKE ? OR description ILIKE ?", pattern, pattern, pattern)
	}

	return query
}

// UpdateProduct persists changes to an existing product.
func (repo *productRepository) UpdateProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(productM)

	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateSKU
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// SetStock writes the authoritative stock counter and optionally stamps the
// last-sold or last-restocked time.
func (repo *productRepository) SetStock(ctx context.Context, id uuid.UUID, stock int, soldAt, restockedAt *time.Time) error {
	updates := map[string]any{
		"current_stock": stock,
	}
	if soldAt != nil {
		updates["last_sold_at"] = *soldAt
	}
	if restockedAt != nil {
		updates["last_restocked_at"] = *restockedAt
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		if isSerializationFailure(result.Error) {
			return domainerrors.ErrConcurrentStockConflict
		}

		return errors.Wrap(result.Error, "failed to set product stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// DeactivateProduct soft-deletes a product.
func (repo *productRepository) DeactivateProduct(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate product")
	}

	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// FindLowStockProducts retrieves active products at or below their minimum stock level.
func (repo *productRepository) FindLowStockProducts(ctx context.Context) ([]*entity.Product, error) {
	var productModels []*model.ProductModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ? AND current_stock <= min_stock_level", true).
		Order("current_stock ASC").
		Find(&productModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find low stock products")
	}

	products := make([]*entity.Product, 0, len(productModels))
	for _, productM := range productModels {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// MattressDimensionOptions returns the distinct thickness and density values
// across active mattresses.
func (repo *productRepository) MattressDimensionOptions(ctx context.Context) ([]float64, []float64, error) {
	var thicknesses []float64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category = ? AND is_active = ? AND thickness IS NOT NULL", entity.CategoryMattress.String(), true).
		Distinct().
		Order("thickness ASC").
		Pluck("thickness", &thicknesses).Error; err != nil {
		return nil, nil, errors.Wrap(err, "failed to list mattress thickness options")
	}

	var densities []float64
	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("category = ? AND is_active = ? AND density IS NOT NULL", entity.CategoryMattress.String(), true).
		Distinct().
		Order("density ASC").
		Pluck("density", &densities).Error; err != nil {
		return nil, nil, errors.Wrap(err, "failed to list mattress density options")
	}

	return thicknesses, densities, nil
}

// categoryAggregateRow receives the grouped inventory rollup scan.
type categoryAggregateRow struct {
	Category     string
	ProductCount int64
	UnitsInStock int64
	Valuation    decimal.Decimal
	RetailValue  decimal.Decimal
}

// AggregateByCategory rolls up stock counts and valuation per category over
// active products.
func (repo *productRepository) AggregateByCategory(ctx context.Context) ([]repository.CategoryAggregate, error) {
	var rows []categoryAggregateRow

	if err := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Select("category, " +
			"COUNT(*) AS product_count, " +
			"COALESCE(SUM(current_stock), 0) AS units_in_stock, " +
			"COALESCE(SUM(unit_cost * current_stock), 0) AS valuation, " +
			"COALESCE(SUM(selling_price * current_stock), 0) AS retail_value").
		Where("is_active = ?", true).
		Group("category").
		Order("category ASC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate products by category")
	}

	aggregates := make([]repository.CategoryAggregate, 0, len(rows))
	for _, row := range rows {
		aggregates = append(aggregates, repository.CategoryAggregate{
			Category:     entity.Category(row.Category),
			ProductCount: row.ProductCount,
			UnitsInStock: row.UnitsInStock,
			Valuation:    row.Valuation,
			RetailValue:  row.RetailValue,
		})
	}

	return aggregates, nil
}

// --- Mapper Functions ---

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	var dimensions *entity.Dimensions
	if data.Thickness != nil || data.Density != nil || data.Length != nil || data.Width != nil {
		dimensions = &entity.Dimensions{
			Thickness: derefFloat(data.Thickness),
			Density:   derefFloat(data.Density),
			Length:    derefFloat(data.Length),
			Width:     derefFloat(data.Width),
		}
	}

	return &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Category:      entity.Category(data.Category),
		Dimensions:    dimensions,
		SupplierID:    data.SupplierID,
		UnitCost:      data.UnitCost,
		SellingPrice:  data.SellingPrice,
		SKU:           data.SKU,
		Description:   data.Description,
		Tags:          data.Tags,
		CurrentStock:  data.CurrentStock,
		MinStockLevel: data.MinStockLevel,
		MaxStockLevel: data.MaxStockLevel,
		StockAlerts:   data.StockAlerts,
		IsActive:      data.IsActive,
		LastRestocked: data.LastRestockedAt,
		LastSold:      data.LastSoldAt,
		LastChecked:   data.LastCheckedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:              data.ID,
		Name:            data.Name,
		Category:        data.Category.String(),
		SupplierID:      data.SupplierID,
		UnitCost:        data.UnitCost,
		SellingPrice:    data.SellingPrice,
		SKU:             data.SKU,
		Description:     data.Description,
		Tags:            data.Tags,
		CurrentStock:    data.CurrentStock,
		MinStockLevel:   data.MinStockLevel,
		MaxStockLevel:   data.MaxStockLevel,
		StockAlerts:     data.StockAlerts,
		IsActive:        data.IsActive,
		LastRestockedAt: data.LastRestocked,
		LastSoldAt:      data.LastSold,
		LastCheckedAt:   data.LastChecked,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}

	if data.Dimensions != nil {
		thickness := data.Dimensions.Thickness
		density := data.Dimensions.Density
		length := data.Dimensions.Length
		width := data.Dimensions.Width
		productM.Thickness = &thickness
		productM.Density = &density
		productM.Length = &length
		productM.Width = &width
	}

	return productM
}

func derefFloat(value *float64) float64 {
	if value == nil {
		return 0
	}

	return *value
}
