package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddressColumns is the embeddable postal address block shared by suppliers
// and customers.
type AddressColumns struct {
	Street  string `gorm:"type:varchar(255)"`
	City    string `gorm:"type:varchar(128)"`
	State   string `gorm:"type:varchar(128)"`
	ZipCode string `gorm:"type:varchar(32)"`
	Country string `gorm:"type:varchar(128)"`
}

// SupplierModel is the GORM-specific struct for the 'suppliers' table.
type SupplierModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name             string          `gorm:"type:varchar(255);not null"`
	Company          string          `gorm:"type:varchar(255)"`
	ContactPerson    string          `gorm:"type:varchar(255)"`
	Email            string          `gorm:"type:varchar(255);index"`
	Phone            string          `gorm:"type:varchar(64)"`
	Address          AddressColumns  `gorm:"embedded;embeddedPrefix:address_"`
	PaymentTerms     string          `gorm:"type:varchar(16);not null;default:'prepaid'"`
	Rating           int             `gorm:"not null;default:5"`
	TotalOrders      int             `gorm:"not null;default:0"`
	TotalSpent       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	LastOrderDate    *time.Time
	ProductsSupplied []string `gorm:"serializer:json;type:jsonb"`
	Notes            string   `gorm:"type:text"`
	IsActive         bool     `gorm:"not null;default:true;index"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (SupplierModel) TableName() string {
	return "suppliers"
}
