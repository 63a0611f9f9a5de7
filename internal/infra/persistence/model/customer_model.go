package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerModel is the GORM-specific struct for the 'customers' table.
// Purchase totals are maintained inside the sale transaction.
type CustomerModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Email          string          `gorm:"type:varchar(255);index"`
	Phone          string          `gorm:"type:varchar(64)"`
	Type           string          `gorm:"type:varchar(16);not null;default:'regular'"`
	Address        AddressColumns  `gorm:"embedded;embeddedPrefix:address_"`
	CreditLimit    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CurrentCredit  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	TotalSpent     decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PurchaseCount  int             `gorm:"not null;default:0"`
	LastPurchaseAt *time.Time
	Notes          string    `gorm:"type:text"`
	CreatedBy      uuid.UUID `gorm:"type:uuid"`
	IsActive       bool      `gorm:"not null;default:true;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}
