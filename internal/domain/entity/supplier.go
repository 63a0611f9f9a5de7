package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentTerms describes the settlement agreement with a supplier.
type PaymentTerms string

const (
	PaymentTermsPrepaid PaymentTerms = "prepaid"
	PaymentTermsNet15   PaymentTerms = "net_15"
	PaymentTermsNet30   PaymentTerms = "net_30"
	PaymentTermsNet60   PaymentTerms = "net_60"
)

// String returns the string representation of the PaymentTerms.
func (p PaymentTerms) String() string {
	return string(p)
}

// IsValid checks if the PaymentTerms is a valid value.
func (p PaymentTerms) IsValid() bool {
	switch p {
	case PaymentTermsPrepaid, PaymentTermsNet15, PaymentTermsNet30, PaymentTermsNet60:
		return true
	default:
		return false
	}
}

// Supplier rating bounds, on a five-point scale.
const (
	MinSupplierRating = 1
	MaxSupplierRating = 5
)

// Supplier is a vendor the business purchases foam products from.
type Supplier struct {
	ID               uuid.UUID
	Name             string
	Company          string
	ContactPerson    string
	Email            string
	Phone            string
	Address          Address
	PaymentTerms     PaymentTerms
	Rating           int
	TotalOrders      int
	TotalSpent       decimal.Decimal
	LastOrderDate    *time.Time
	ProductsSupplied []uuid.UUID
	Notes            string
	IsActive         bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RecordSuppliedProduct appends a product to the supplied list, skipping
// duplicates.
func (s *Supplier) RecordSuppliedProduct(productID uuid.UUID) {
	for _, id := range s.ProductsSupplied {
		if id == productID {
			return
		}
	}
	s.ProductsSupplied = append(s.ProductsSupplied, productID)
}
