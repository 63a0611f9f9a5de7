package impl

import (
	"context"
	"time"

	"foamstock/internal/domain/entity"
	domainerrors "foamstock/internal/domain/errors"
	"foamstock/internal/domain/repository"
	"foamstock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

const (
	dashboardWindowDays  = 30
	dashboardTopProducts = 5
	dashboardRecentSales = 10
)

type dashboardService struct {
	saleRepo     repository.SaleRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
}

// DashboardServiceParams holds dependencies for DashboardService, injected by Fx.
type DashboardServiceParams struct {
	fx.In

	SaleRepo     repository.SaleRepository
	ProductRepo  repository.ProductRepository
	CustomerRepo repository.CustomerRepository
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(params DashboardServiceParams) usecase.DashboardUsecase {
	return &dashboardService{
		saleRepo:     params.SaleRepo,
		productRepo:  params.ProductRepo,
		customerRepo: params.CustomerRepo,
	}
}

// GetStats builds the dashboard snapshot. Profit figures are included only
// when the actor holds profit visibility.
func (s *dashboardService) GetStats(ctx context.Context, actor *entity.User) (*usecase.DashboardStats, error) {
	now := time.Now()
	windowStart := now.AddDate(0, 0, -dashboardWindowDays)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	window, err := s.saleRepo.Summarize(ctx, repository.SaleFilter{From: &windowStart, To: &now})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize sales window")
	}

	today, err := s.saleRepo.Summarize(ctx, repository.SaleFilter{From: &todayStart, To: &now})
	if err != nil {
		return nil, errors.Wrap(err, "failed to summarize today's sales")
	}

	categories, err := s.productRepo.AggregateByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate inventory")
	}

	lowStock, err := s.productRepo.FindLowStockProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find low stock products")
	}

	topProducts, err := s.saleRepo.TopProducts(ctx, windowStart, dashboardTopProducts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to rank top products")
	}

	recentSales, err := s.saleRepo.RecentSales(ctx, dashboardRecentSales)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list recent sales")
	}

	_, activeCustomers, err := s.customerRepo.ListCustomers(ctx, repository.CustomerFilter{Limit: 1})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count customers")
	}

	stats := &usecase.DashboardStats{
		Revenue30Days:   window.Revenue,
		SalesToday:      today.Count,
		RevenueToday:    today.Revenue,
		TopProducts:     topProducts,
		RecentSales:     recentSales,
		ActiveCustomers: activeCustomers,
	}

	inventoryValue := decimal.Zero
	retailValue := decimal.Zero
	for _, category := range categories {
		inventoryValue = inventoryValue.Add(category.Valuation)
		retailValue = retailValue.Add(category.RetailValue)
	}
	stats.InventoryValue = inventoryValue
	stats.RetailValue = retailValue

	for _, product := range lowStock {
		item := &usecase.InventoryItem{Product: product, Stock: product.StockInfo()}
		if item.Stock.Status == entity.StockStatusOutOfStock {
			stats.OutOfStock = append(stats.OutOfStock, item)
		} else {
			stats.LowStock = append(stats.LowStock, item)
		}
	}

	if actor != nil && actor.Permissions.Has(entity.PermissionViewProfits) {
		profit := window.Profit
		stats.Profit30Days = &profit
	}

	return stats, nil
}

// GetSalesChart aggregates daily sales buckets over the trailing period.
// Accepted periods are 7, 30 and 90 days.
func (s *dashboardService) GetSalesChart(ctx context.Context, days int) ([]repository.SalesBucket, error) {
	switch days {
	case 7, 30, 90:
	default:
		return nil, domainerrors.ErrValidationFailed.WithDetails("period must be 7, 30 or 90 days")
	}

	now := time.Now()
	buckets, err := s.saleRepo.SalesBuckets(ctx, now.AddDate(0, 0, -days), now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build sales chart")
	}

	return buckets, nil
}

// GetInventoryChart rolls up stock and valuation per category.
func (s *dashboardService) GetInventoryChart(ctx context.Context) ([]repository.CategoryAggregate, error) {
	categories, err := s.productRepo.AggregateByCategory(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate inventory")
	}

	return categories, nil
}
