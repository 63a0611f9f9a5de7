// Package model contains the GORM-specific structs mapping domain entities
// to database tables.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
// current_stock is the authoritative stock counter for the whole system.
type ProductModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Category      string    `gorm:"type:varchar(32);not null;index"`
	Thickness     *float64  `gorm:"type:decimal(6,2)"`
	Density       *float64  `gorm:"type:decimal(6,2)"`
	Length        *float64  `gorm:"type:decimal(8,2)"`
	Width         *float64  `gorm:"type:decimal(8,2)"`
	SupplierID    uuid.UUID `gorm:"type:uuid;not null;index"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	SKU           string          `gorm:"type:varchar(32);not null;uniqueIndex"`
	Description   string          `gorm:"type:text"`
	Tags          []string        `gorm:"serializer:json;type:jsonb"`
	CurrentStock  int             `gorm:"not null;default:0"`
	MinStockLevel int             `gorm:"not null;default:0"`
	MaxStockLevel int             `gorm:"not null;default:0"`
	StockAlerts   bool            `gorm:"not null;default:true"`
	IsActive      bool            `gorm:"not null;default:true;index"`
	LastRestockedAt *time.Time
	LastSoldAt      *time.Time
	LastCheckedAt   *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
