package handler

import (
	"log/slog"
	"net/http"

	"foamstock/internal/delivery/http/middleware"
	"foamstock/internal/delivery/http/response"
	"foamstock/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// DashboardHandler holds dependencies for reporting handlers.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		uc:     uc,
		logger: logger,
	}
}

// dashboardStatsView is the landing page snapshot. Profit is omitted for
// actors without profit visibility.
type dashboardStatsView struct {
	Revenue30Days   decimal.Decimal      `json:"revenue_30_days"`
	Profit30Days    *decimal.Decimal     `json:"profit_30_days,omitempty"`
	SalesToday      int64                `json:"sales_today"`
	RevenueToday    decimal.Decimal      `json:"revenue_today"`
	InventoryValue  decimal.Decimal      `json:"inventory_value"`
	RetailValue     decimal.Decimal      `json:"retail_value"`
	LowStock        []*InventoryItemView `json:"low_stock"`
	OutOfStock      []*InventoryItemView `json:"out_of_stock"`
	TopProducts     []ProductSalesView   `json:"top_products"`
	RecentSales     []*SaleView          `json:"recent_sales"`
	ActiveCustomers int64                `json:"active_customers"`
}

// GetStats builds the dashboard snapshot for the authenticated actor.
func (h *DashboardHandler) GetStats(c echo.Context) error {
	actor, ok := middleware.ActorFromContext(c)
	if !ok {
		return response.Unauthorized(c, "AUTH_REQUIRED", "Authentication required")
	}

	stats, err := h.uc.GetStats(c.Request().Context(), actor)
	if err != nil {
		return errors.WithStack(err)
	}

	view := dashboardStatsView{
		Revenue30Days:   stats.Revenue30Days,
		Profit30Days:    stats.Profit30Days,
		SalesToday:      stats.SalesToday,
		RevenueToday:    stats.RevenueToday,
		InventoryValue:  stats.InventoryValue,
		RetailValue:     stats.RetailValue,
		LowStock:        newInventoryItemViews(stats.LowStock),
		OutOfStock:      newInventoryItemViews(stats.OutOfStock),
		TopProducts:     newProductSalesViews(stats.TopProducts),
		RecentSales:     newSaleViews(stats.RecentSales),
		ActiveCustomers: stats.ActiveCustomers,
	}

	return response.Success(c, http.StatusOK, view, "Dashboard stats retrieved successfully")
}

// GetSalesChart aggregates daily sales buckets over the trailing period.
func (h *DashboardHandler) GetSalesChart(c echo.Context) error {
	days := queryInt(c, "days", 30)

	buckets, err := h.uc.GetSalesChart(c.Request().Context(), days)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newSalesBucketViews(buckets), "Sales chart retrieved successfully")
}

// GetInventoryChart rolls up stock and valuation per category.
func (h *DashboardHandler) GetInventoryChart(c echo.Context) error {
	aggregates, err := h.uc.GetInventoryChart(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newCategoryAggregateViews(aggregates), "Inventory chart retrieved successfully")
}
