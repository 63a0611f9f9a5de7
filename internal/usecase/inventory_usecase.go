package usecase

import (
	"context"

	"foamstock/internal/domain/entity"
	"foamstock/internal/domain/repository"

	"github.com/google/uuid"
)

// InventoryItem pairs a product with its derived stock read model.
type InventoryItem struct {
	Product *entity.Product
	Stock   entity.StockInfo
}

// StockWriteInput carries a manual stock mutation with its audit context.
type StockWriteInput struct {
	Reason     string
	AdjustedBy uuid.UUID
}

// InventoryUsecase defines the interface for the stock ledger use cases.
type InventoryUsecase interface {
	// ListInventory retrieves products with derived stock status.
	ListInventory(ctx context.Context, filter repository.ProductFilter) ([]*InventoryItem, int64, error)

	// GetStock retrieves one product's stock read model.
	GetStock(ctx context.Context, productID uuid.UUID) (*InventoryItem, error)

	// SetStock writes an absolute stock level, recording the computed delta as
	// an audit entry. Publishes a stock alert on a transition into low or
	// out-of-stock when alerts are enabled.
	SetStock(ctx context.Context, productID uuid.UUID, newStock int, input StockWriteInput) (*InventoryItem, error)

	// AdjustStock applies a relative delta, clamped at zero, and appends an
	// audit entry. Alerting as with SetStock.
	AdjustStock(ctx context.Context, productID uuid.UUID, delta int, input StockWriteInput) (*InventoryItem, error)

	// ListAdjustments retrieves a product's audit trail, newest first.
	ListAdjustments(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.StockAdjustment, error)

	// LowStockAlerts retrieves active products at or below their minimum
	// stock level.
	LowStockAlerts(ctx context.Context) ([]*InventoryItem, error)
}
