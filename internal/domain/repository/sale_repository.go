package repository

import (
	"context"
	"time"

	"foamstock/internal/domain/entity"
	"foamstock/internal/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Domain-specific errors for sale persistence.
var (
	// ErrSaleNotFound is returned when a sale is not found.
	ErrSaleNotFound = errors.New("sale not found")
	// ErrDuplicateSaleNumber is returned when the generated sale number collides
	// with an existing one.
	ErrDuplicateSaleNumber = errors.New("sale number already exists")
)

// SaleFilter narrows sale list queries.
type SaleFilter struct {
	From          *time.Time
	To            *time.Time
	Status        entity.SaleStatus
	PaymentMethod entity.PaymentMethod
	CustomerID    *uuid.UUID
	// SoldBy restricts results to one salesperson's sales.
	SoldBy *uuid.UUID
	Limit  int
	Offset int
}

// SaleSummary is the aggregate block returned alongside sale listings.
type SaleSummary struct {
	Count        int64
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
	AverageValue decimal.Decimal
}

// SalesBucket is one time bucket of the sales chart.
type SalesBucket struct {
	Day     time.Time
	Count   int64
	Revenue decimal.Decimal
	Profit  decimal.Decimal
}

// ProductSales ranks a product by quantity sold over a period.
type ProductSales struct {
	ProductID    uuid.UUID
	Name         string
	QuantitySold int64
	Revenue      decimal.Decimal
}

// SaleRepository defines the interface for sale-related database operations.
type SaleRepository interface {
	// CreateSale persists a sale together with its line items.
	CreateSale(ctx context.Context, sale *entity.Sale) error

	// FindSaleByID retrieves a sale with its items.
	FindSaleByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)

	// FindSaleByNumber retrieves a sale by its human-readable number.
	FindSaleByNumber(ctx context.Context, saleNumber string) (*entity.Sale, error)

	// ListSales retrieves sales matching the filter, newest first, along with
	// the total count before pagination.
	ListSales(ctx context.Context, filter SaleFilter) ([]*entity.Sale, int64, error)

	// UpdateSale persists header changes and, when the sale carries items,
	// replaces the line items wholesale.
	UpdateSale(ctx context.Context, sale *entity.Sale) error

	// UpdateSaleStatus changes only the lifecycle status of a sale.
	UpdateSaleStatus(ctx context.Context, id uuid.UUID, status entity.SaleStatus) error

	// Summarize aggregates count, revenue, profit and average value over sales
	// matching the filter. Cancelled and refunded sales are excluded.
	Summarize(ctx context.Context, filter SaleFilter) (*SaleSummary, error)

	// SalesBuckets aggregates per-day revenue and profit between from and to,
	// excluding cancelled and refunded sales.
	SalesBuckets(ctx context.Context, from, to time.Time) ([]SalesBucket, error)

	// TopProducts ranks products by quantity sold since the given time.
	TopProducts(ctx context.Context, since time.Time, limit int) ([]ProductSales, error)

	// RecentSales retrieves the most recent sales regardless of status.
	RecentSales(ctx context.Context, limit int) ([]*entity.Sale, error)
}
