package impl

import (
	"context"
	"testing"

	"foamstock/config"
	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	mockRepo "foamstock/internal/mocks/repository"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	supplierRepo *mockRepo.MockSupplierRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	supplierRepo := mockRepo.NewMockSupplierRepository(t)

	cfg := &config.Config{
		Stock: &config.StockConfig{DefaultMinLevel: 5, DefaultMaxLevel: 100},
	}

	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		SupplierRepo: supplierRepo,
		Config:       cfg,
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		supplierRepo: supplierRepo,
	}
}

func TestProductService_CreateProduct_GeneratesSKUAndDefaults(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	supplier := &entity.Supplier{ID: uuid.New(), Name: "FoamWorks Ltd", IsActive: true}

	fx.supplierRepo.EXPECT().FindSupplierByID(ctx, supplier.ID).Return(supplier, nil)

	var created *entity.Product
	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, product *entity.Product) {
			created = product
		}).
		Return(nil)
	fx.supplierRepo.EXPECT().
		AppendSuppliedProduct(ctx, supplier.ID, mock.AnythingOfType("uuid.UUID")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:         "Memory Pillow",
		Category:     entity.CategoryPillow,
		SupplierID:   supplier.ID,
		UnitCost:     dec("20.00"),
		SellingPrice: dec("35.00"),
		InitialStock: 12,
	})
	require.NoError(t, err)
	assert.Same(t, created, product)

	assert.Regexp(t, `^PIL-[0-9A-Z]{6}-\d{4}$`, product.SKU)
	assert.Equal(t, 5, product.MinStockLevel)
	assert.Equal(t, 100, product.MaxStockLevel)
	assert.Equal(t, 12, product.CurrentStock)
	assert.True(t, product.StockAlerts)
	assert.True(t, product.IsActive)
	assert.NotNil(t, product.LastRestocked)
}

func TestProductService_CreateProduct_MattressRequiresDimensions(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.CreateProduct(context.Background(), usecase.CreateProductInput{
		Name:         "Orthopedic Mattress",
		Category:     entity.CategoryMattress,
		SupplierID:   uuid.New(),
		UnitCost:     dec("150.00"),
		SellingPrice: dec("250.00"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProductService_CreateProduct_UnknownSupplier(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	supplierID := uuid.New()
	fx.supplierRepo.EXPECT().
		FindSupplierByID(ctx, supplierID).
		Return(nil, repository.ErrSupplierNotFound)

	_, err := fx.service.CreateProduct(ctx, usecase.CreateProductInput{
		Name:         "Foot Mat",
		Category:     entity.CategoryFootMat,
		SupplierID:   supplierID,
		UnitCost:     dec("5.00"),
		SellingPrice: dec("9.00"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "SUPPLIER_NOT_FOUND", appErr.ErrorCode())
}

func TestProductService_UpdateThresholds(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct(10, 5, "100.00", "60.00")
	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().UpdateProduct(ctx, product).Return(nil)

	minLevel, maxLevel := 3, 50
	updated, err := fx.service.UpdateThresholds(ctx, product.ID, &minLevel, &maxLevel)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.MinStockLevel)
	assert.Equal(t, 50, updated.MaxStockLevel)
}

func TestProductService_UpdateThresholds_MinAboveMaxRejected(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	product := testProduct(10, 5, "100.00", "60.00")
	product.MaxStockLevel = 20
	fx.productRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	minLevel := 30
	_, err := fx.service.UpdateThresholds(ctx, product.ID, &minLevel, nil)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	id := uuid.New()
	fx.productRepo.EXPECT().DeactivateProduct(ctx, id).Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, id)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "PRODUCT_NOT_FOUND", appErr.ErrorCode())
}
