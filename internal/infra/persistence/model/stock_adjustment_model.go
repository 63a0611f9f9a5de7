package model

import (
	"time"

	"github.com/google/uuid"
)

// StockAdjustmentModel is the GORM-specific struct for the
// 'stock_adjustments' table. Rows are append-only audit records.
type StockAdjustmentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ProductID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Delta       int       `gorm:"not null"`
	Reason      string    `gorm:"type:text;not null"`
	AdjustedBy  uuid.UUID `gorm:"type:uuid;not null"`
	StockBefore int       `gorm:"not null"`
	StockAfter  int       `gorm:"not null"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (StockAdjustmentModel) TableName() string {
	return "stock_adjustments"
}
