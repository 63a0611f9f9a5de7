package impl

import (
	"context"
	"testing"
	"time"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	mockRepo "foamstock/internal/mocks/repository"
	"foamstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dashboardServiceFixtures holds all test dependencies for dashboard service tests.
type dashboardServiceFixtures struct {
	service      usecase.DashboardUsecase
	saleRepo     *mockRepo.MockSaleRepository
	productRepo  *mockRepo.MockProductRepository
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestDashboardService(t *testing.T) dashboardServiceFixtures {
	saleRepo := mockRepo.NewMockSaleRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)

	service := NewDashboardService(DashboardServiceParams{
		SaleRepo:     saleRepo,
		ProductRepo:  productRepo,
		CustomerRepo: customerRepo,
	})

	return dashboardServiceFixtures{
		service:      service,
		saleRepo:     saleRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
	}
}

func stubDashboardStats(fx dashboardServiceFixtures, lowStock []*entity.Product) {
	window := &repository.SaleSummary{
		Count:   12,
		Revenue: decimal.NewFromInt(4800),
		Profit:  decimal.NewFromInt(1200),
	}
	today := &repository.SaleSummary{
		Count:   2,
		Revenue: decimal.NewFromInt(300),
	}

	fx.saleRepo.EXPECT().Summarize(mock.Anything, mock.Anything).Return(window, nil).Once()
	fx.saleRepo.EXPECT().Summarize(mock.Anything, mock.Anything).Return(today, nil).Once()
	fx.productRepo.EXPECT().AggregateByCategory(mock.Anything).Return([]repository.CategoryAggregate{
		{
			Category:     entity.CategoryMattress,
			ProductCount: 3,
			UnitsInStock: 40,
			Valuation:    decimal.NewFromInt(2000),
			RetailValue:  decimal.NewFromInt(3600),
		},
		{
			Category:     entity.CategoryPillow,
			ProductCount: 5,
			UnitsInStock: 120,
			Valuation:    decimal.NewFromInt(600),
			RetailValue:  decimal.NewFromInt(1440),
		},
	}, nil)
	fx.productRepo.EXPECT().FindLowStockProducts(mock.Anything).Return(lowStock, nil)
	fx.saleRepo.EXPECT().TopProducts(mock.Anything, mock.Anything, dashboardTopProducts).
		Return([]repository.ProductSales{}, nil)
	fx.saleRepo.EXPECT().RecentSales(mock.Anything, dashboardRecentSales).
		Return([]*entity.Sale{}, nil)
	fx.customerRepo.EXPECT().ListCustomers(mock.Anything, repository.CustomerFilter{Limit: 1}).
		Return([]*entity.Customer{}, int64(7), nil)
}

func TestDashboardService_GetStats_SplitsLowAndOutOfStock(t *testing.T) {
	fx := createTestDashboardService(t)

	lowStock := []*entity.Product{
		{ID: uuid.New(), CurrentStock: 2, MinStockLevel: 5, IsActive: true},
		{ID: uuid.New(), CurrentStock: 0, MinStockLevel: 5, IsActive: true},
	}
	stubDashboardStats(fx, lowStock)

	actor := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleBusinessOwner,
		Permissions: entity.DefaultPermissions(entity.RoleBusinessOwner),
	}

	stats, err := fx.service.GetStats(context.Background(), actor)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(4800).Equal(stats.Revenue30Days))
	assert.True(t, decimal.NewFromInt(2600).Equal(stats.InventoryValue))
	assert.True(t, decimal.NewFromInt(5040).Equal(stats.RetailValue))
	assert.Equal(t, int64(7), stats.ActiveCustomers)
	assert.Len(t, stats.LowStock, 1)
	assert.Len(t, stats.OutOfStock, 1)

	require.NotNil(t, stats.Profit30Days)
	assert.True(t, decimal.NewFromInt(1200).Equal(*stats.Profit30Days))
}

func TestDashboardService_GetStats_HidesProfitWithoutPermission(t *testing.T) {
	fx := createTestDashboardService(t)
	stubDashboardStats(fx, nil)

	actor := &entity.User{
		ID:          uuid.New(),
		Role:        entity.RoleSalesperson,
		Permissions: entity.DefaultPermissions(entity.RoleSalesperson),
	}

	stats, err := fx.service.GetStats(context.Background(), actor)
	require.NoError(t, err)
	assert.Nil(t, stats.Profit30Days)
}

func TestDashboardService_GetSalesChart_RejectsUnknownPeriod(t *testing.T) {
	fx := createTestDashboardService(t)

	_, err := fx.service.GetSalesChart(context.Background(), 14)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestDashboardService_GetSalesChart(t *testing.T) {
	fx := createTestDashboardService(t)

	buckets := []repository.SalesBucket{
		{Day: time.Now().Truncate(24 * time.Hour), Count: 3, Revenue: decimal.NewFromInt(900)},
	}
	fx.saleRepo.EXPECT().SalesBuckets(mock.Anything, mock.Anything, mock.Anything).Return(buckets, nil)

	result, err := fx.service.GetSalesChart(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, result, 1)
}
