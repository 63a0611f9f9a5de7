package repository

import (
	"context"

	"foamstock/internal/domain/entity"

	"github.com/google/uuid"
)

// StockAdjustmentRepository defines the interface for the append-only stock
// adjustment audit trail.
type StockAdjustmentRepository interface {
	// CreateAdjustment appends an audit record. Records are never updated or
	// deleted.
	CreateAdjustment(ctx context.Context, adjustment *entity.StockAdjustment) error

	// ListAdjustmentsByProduct retrieves the audit trail for a product, newest
	// first.
	ListAdjustmentsByProduct(ctx context.Context, productID uuid.UUID, limit, offset int) ([]*entity.StockAdjustment, error)
}
