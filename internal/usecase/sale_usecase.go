package usecase

import (
	"context"
	"time"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleItemInput is one requested line of a sale. Prices are captured from
// the product at execution time, never from the client.
type SaleItemInput struct {
	ProductID uuid.UUID
	Quantity  int
}

// CreateSaleInput carries the fields for executing a sale transaction.
// CustomerID is nil for walk-in sales with no customer record.
type CreateSaleInput struct {
	CustomerID    *uuid.UUID
	Items         []SaleItemInput
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	AmountPaid    decimal.Decimal
	PaymentMethod entity.PaymentMethod
	Notes         string
	SoldBy        uuid.UUID
}

// ReviseSaleInput carries changes for an existing pending sale. Items, when
// present, fully replace the existing lines: prior stock and customer totals
// are restored before the new lines are applied.
type ReviseSaleInput struct {
	Items         []SaleItemInput
	Discount      *decimal.Decimal
	Tax           *decimal.Decimal
	AmountPaid    *decimal.Decimal
	PaymentMethod *entity.PaymentMethod
	Notes         *string
}

// RestockFailure records one line that could not be returned to stock during
// a cancel or refund.
type RestockFailure struct {
	ProductID uuid.UUID
	Quantity  int
	Reason    string
}

// StatusChangeResult reports a status transition and any restock shortfalls.
// Failures never revert the status change.
type StatusChangeResult struct {
	Sale     *entity.Sale
	Failures []RestockFailure
}

// DailySummary aggregates one day's completed and pending sales.
type DailySummary struct {
	Date         time.Time
	Count        int64
	Revenue      decimal.Decimal
	Profit       decimal.Decimal
	AverageValue decimal.Decimal
}

// SaleListResult bundles a page of sales with the aggregate block over the
// same filter.
type SaleListResult struct {
	Sales   []*entity.Sale
	Total   int64
	Summary *repository.SaleSummary
}

// SaleUsecase defines the interface for the sale transaction engine and
// sale queries.
type SaleUsecase interface {
	// CreateSale executes the sale transaction: locks and decrements stock,
	// captures prices, updates customer totals and inserts the sale, all
	// atomically. Retries once on a sale number collision.
	CreateSale(ctx context.Context, input CreateSaleInput) (*entity.Sale, error)

	// GetSale retrieves a sale. Salespeople can only read their own sales.
	GetSale(ctx context.Context, id uuid.UUID, actor *entity.User) (*entity.Sale, error)

	// ListSales retrieves sales matching the filter plus the summary block.
	// Salespeople are scoped to their own sales regardless of the filter.
	ListSales(ctx context.Context, filter repository.SaleFilter, actor *entity.User) (*SaleListResult, error)

	// ReviseSale updates a pending sale. Item replacement restores the prior
	// stock and customer totals and re-applies the new lines in one
	// transaction.
	ReviseSale(ctx context.Context, id uuid.UUID, input ReviseSaleInput, actor *entity.User) (*entity.Sale, error)

	// ChangeStatus moves a sale through its lifecycle. Transitions into
	// cancelled or refunded restock each line best-effort; failures are
	// reported without reverting the status.
	ChangeStatus(ctx context.Context, id uuid.UUID, next entity.SaleStatus, actor *entity.User) (*StatusChangeResult, error)

	// GetDailySummary aggregates the given day's sales.
	GetDailySummary(ctx context.Context, day time.Time) (*DailySummary, error)
}
