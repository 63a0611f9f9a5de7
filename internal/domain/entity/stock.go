package entity

import (
	"time"

	"github.com/google/uuid"
)

// StockStatus is the derived availability state of a product.
type StockStatus string

const (
	StockStatusInStock    StockStatus = "in_stock"
	StockStatusLowStock   StockStatus = "low_stock"
	StockStatusOutOfStock StockStatus = "out_of_stock"
)

// String returns the string representation of the StockStatus.
func (s StockStatus) String() string {
	return string(s)
}

// DeriveStockStatus computes the status from the current counter and the
// minimum threshold. Zero or negative stock is out of stock; stock at or
// below the threshold is low.
func DeriveStockStatus(current, minLevel int) StockStatus {
	switch {
	case current <= 0:
		return StockStatusOutOfStock
	case current <= minLevel:
		return StockStatusLowStock
	default:
		return StockStatusInStock
	}
}

// StockInfo is the read model returned by stock ledger queries.
type StockInfo struct {
	CurrentStock  int
	Status        StockStatus
	AlertsEnabled bool
}

// StockAdjustment is an append-only audit record of a manual stock change.
type StockAdjustment struct {
	ID          uuid.UUID
	ProductID   uuid.UUID
	Delta       int
	Reason      string
	AdjustedBy  uuid.UUID
	StockBefore int
	StockAfter  int
	CreatedAt   time.Time
}

// ApplyAdjustment returns the resulting stock level for a manual delta,
// clamped so stock never goes below zero.
func ApplyAdjustment(current, delta int) int {
	next := current + delta
	if next < 0 {
		return 0
	}

	return next
}
