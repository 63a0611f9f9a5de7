package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/domain/service"
	mockRepo "foamstock/internal/mocks/repository"
	mockService "foamstock/internal/mocks/service"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service        usecase.InventoryUsecase
	txManager      *mockRepo.MockTransactionManager
	factory        *mockRepo.MockRepositoryFactory
	productRepo    *mockRepo.MockProductRepository
	adjustmentRepo *mockRepo.MockStockAdjustmentRepository
	publisher      *mockService.MockEventPublisher
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	adjustmentRepo := mockRepo.NewMockStockAdjustmentRepository(t)
	publisher := mockService.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	service := NewInventoryService(InventoryServiceParams{
		TxManager:      txManager,
		ProductRepo:    productRepo,
		AdjustmentRepo: adjustmentRepo,
		EventPublisher: publisher,
		Logger:         logger,
	})

	return inventoryServiceFixtures{
		service:        service,
		txManager:      txManager,
		factory:        factory,
		productRepo:    productRepo,
		adjustmentRepo: adjustmentRepo,
		publisher:      publisher,
	}
}

func (f inventoryServiceFixtures) expectTransaction() {
	f.txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
	f.factory.EXPECT().NewProductRepository().Return(f.productRepo)
	f.factory.EXPECT().NewStockAdjustmentRepository().Return(f.adjustmentRepo)
}

func TestInventoryService_AdjustStock_AppendsAuditEntry(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	product := testProduct(10, 2, "100.00", "60.00")
	product.StockAlerts = false
	actor := uuid.New()

	fx.expectTransaction()
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 7, mock.Anything, mock.Anything).Return(nil)

	var recorded *entity.StockAdjustment
	fx.adjustmentRepo.EXPECT().
		CreateAdjustment(ctx, mock.AnythingOfType("*entity.StockAdjustment")).
		Run(func(_ context.Context, adjustment *entity.StockAdjustment) {
			recorded = adjustment
		}).
		Return(nil)

	item, err := fx.service.AdjustStock(ctx, product.ID, -3, usecase.StockWriteInput{
		Reason:     "damaged in storage",
		AdjustedBy: actor,
	})
	require.NoError(t, err)
	assert.Equal(t, 7, item.Stock.CurrentStock)

	require.NotNil(t, recorded)
	assert.Equal(t, -3, recorded.Delta)
	assert.Equal(t, 10, recorded.StockBefore)
	assert.Equal(t, 7, recorded.StockAfter)
	assert.Equal(t, actor, recorded.AdjustedBy)
	assert.Equal(t, "damaged in storage", recorded.Reason)
}

func TestInventoryService_AdjustStock_ClampsAtZero(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	product := testProduct(4, 2, "100.00", "60.00")
	product.StockAlerts = false

	fx.expectTransaction()
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 0, mock.Anything, mock.Anything).Return(nil)
	fx.adjustmentRepo.EXPECT().
		CreateAdjustment(ctx, mock.MatchedBy(func(adjustment *entity.StockAdjustment) bool {
			return adjustment.Delta == -4 && adjustment.StockAfter == 0
		})).
		Return(nil)

	item, err := fx.service.AdjustStock(ctx, product.ID, -10, usecase.StockWriteInput{
		Reason:     "inventory write-off",
		AdjustedBy: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock.CurrentStock)
	assert.Equal(t, entity.StockStatusOutOfStock, item.Stock.Status)
}

func TestInventoryService_SetStock_PublishesAlertOnLowTransition(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	product := testProduct(20, 5, "100.00", "60.00")

	fx.expectTransaction()
	fx.productRepo.EXPECT().FindProductByIDForUpdate(ctx, product.ID).Return(product, nil)
	fx.productRepo.EXPECT().SetStock(ctx, product.ID, 3, mock.Anything, mock.Anything).Return(nil)
	fx.adjustmentRepo.EXPECT().CreateAdjustment(ctx, mock.Anything).Return(nil)
	fx.publisher.EXPECT().
		PublishStockAlert(ctx, mock.MatchedBy(func(event *service.StockAlertEvent) bool {
			return event.CurrentStock == 3 && event.Status == entity.StockStatusLowStock.String()
		})).
		Return(nil)

	item, err := fx.service.SetStock(ctx, product.ID, 3, usecase.StockWriteInput{
		Reason:     "stocktake correction",
		AdjustedBy: uuid.New(),
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StockStatusLowStock, item.Stock.Status)
}

func TestInventoryService_SetStock_RejectsNegativeLevel(t *testing.T) {
	fx := createTestInventoryService(t)

	_, err := fx.service.SetStock(context.Background(), uuid.New(), -1, usecase.StockWriteInput{
		Reason:     "bad input",
		AdjustedBy: uuid.New(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestInventoryService_WriteStock_RequiresReason(t *testing.T) {
	fx := createTestInventoryService(t)

	_, err := fx.service.AdjustStock(context.Background(), uuid.New(), 5, usecase.StockWriteInput{
		AdjustedBy: uuid.New(),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestInventoryService_LowStockAlerts(t *testing.T) {
	fx := createTestInventoryService(t)
	ctx := context.Background()

	low := testProduct(2, 5, "100.00", "60.00")
	out := testProduct(0, 5, "80.00", "50.00")

	fx.productRepo.EXPECT().
		FindLowStockProducts(ctx).
		Return([]*entity.Product{low, out}, nil)

	items, err := fx.service.LowStockAlerts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, entity.StockStatusLowStock, items[0].Stock.Status)
	assert.Equal(t, entity.StockStatusOutOfStock, items[1].Stock.Status)
}
