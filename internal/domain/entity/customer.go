package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerType distinguishes walk-in buyers from recurring business
// accounts, which drives pricing and credit decisions downstream.
type CustomerType string

const (
	CustomerTypeRegular   CustomerType = "regular"
	CustomerTypeWholesale CustomerType = "wholesale"
	CustomerTypeCorporate CustomerType = "corporate"
	CustomerTypeRetail    CustomerType = "retail"
)

// String returns the string representation of the CustomerType.
func (c CustomerType) String() string {
	return string(c)
}

// IsValid checks if the CustomerType is a valid value.
func (c CustomerType) IsValid() bool {
	switch c {
	case CustomerTypeRegular, CustomerTypeWholesale, CustomerTypeCorporate, CustomerTypeRetail:
		return true
	default:
		return false
	}
}

// Address is a postal address block shared by customers and suppliers.
type Address struct {
	Street  string
	City    string
	State   string
	ZipCode string
	Country string
}

// Customer is a buyer with running purchase totals maintained by the sale
// transaction.
type Customer struct {
	ID            uuid.UUID
	Name          string
	Email         string
	Phone         string
	Type          CustomerType
	Address       Address
	CreditLimit   decimal.Decimal
	CurrentCredit decimal.Decimal
	TotalSpent    decimal.Decimal
	PurchaseCount int
	LastPurchase  *time.Time
	Notes         string
	CreatedBy     uuid.UUID
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecordPurchase folds a completed sale amount into the running totals.
func (c *Customer) RecordPurchase(amount decimal.Decimal, at time.Time) {
	c.TotalSpent = c.TotalSpent.Add(amount)
	c.PurchaseCount++
	t := at
	c.LastPurchase = &t
}

// ReversePurchase backs a sale amount out of the running totals, used when
// a sale's items are revised. Totals never go negative.
func (c *Customer) ReversePurchase(amount decimal.Decimal) {
	c.TotalSpent = c.TotalSpent.Sub(amount)
	if c.TotalSpent.IsNegative() {
		c.TotalSpent = decimal.Zero
	}
	if c.PurchaseCount > 0 {
		c.PurchaseCount--
	}
}
