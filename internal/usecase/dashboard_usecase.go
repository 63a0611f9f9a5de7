package usecase

import (
	"context"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"

	"github.com/shopspring/decimal"
)

// DashboardStats is the aggregate snapshot behind the dashboard landing
// page. Profit figures are nil for actors without profit visibility.
type DashboardStats struct {
	Revenue30Days   decimal.Decimal
	Profit30Days    *decimal.Decimal
	SalesToday      int64
	RevenueToday    decimal.Decimal
	InventoryValue  decimal.Decimal
	RetailValue     decimal.Decimal
	LowStock        []*InventoryItem
	OutOfStock      []*InventoryItem
	TopProducts     []repository.ProductSales
	RecentSales     []*entity.Sale
	ActiveCustomers int64
}

// DashboardUsecase defines the interface for dashboard aggregation use cases.
type DashboardUsecase interface {
	// GetStats builds the dashboard snapshot. Profit figures are included only
	// when the actor holds profit visibility.
	GetStats(ctx context.Context, actor *entity.User) (*DashboardStats, error)

	// GetSalesChart aggregates daily sales buckets over the trailing period.
	// Accepted periods are 7, 30 and 90 days.
	GetSalesChart(ctx context.Context, days int) ([]repository.SalesBucket, error)

	// GetInventoryChart rolls up stock and valuation per category.
	GetInventoryChart(ctx context.Context) ([]repository.CategoryAggregate, error)
}
