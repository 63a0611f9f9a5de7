package entity

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod is the way a sale was settled.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodTransfer PaymentMethod = "transfer"
	PaymentMethodCredit   PaymentMethod = "credit"
)

// String returns the string representation of the PaymentMethod.
func (p PaymentMethod) String() string {
	return string(p)
}

// IsValid checks if the PaymentMethod is a valid value.
func (p PaymentMethod) IsValid() bool {
	switch p {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodTransfer, PaymentMethodCredit:
		return true
	default:
		return false
	}
}

// SaleStatus is the lifecycle state of a sale.
type SaleStatus string

const (
	SaleStatusPending   SaleStatus = "pending"
	SaleStatusCompleted SaleStatus = "completed"
	SaleStatusCancelled SaleStatus = "cancelled"
	SaleStatusRefunded  SaleStatus = "refunded"
)

// String returns the string representation of the SaleStatus.
func (s SaleStatus) String() string {
	return string(s)
}

// IsValid checks if the SaleStatus is a valid value.
func (s SaleStatus) IsValid() bool {
	switch s {
	case SaleStatusPending, SaleStatusCompleted, SaleStatusCancelled, SaleStatusRefunded:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether the status change is allowed.
// Cancelled and refunded are terminal.
func (s SaleStatus) CanTransitionTo(next SaleStatus) bool {
	switch s {
	case SaleStatusPending:
		return next == SaleStatusCompleted || next == SaleStatusCancelled || next == SaleStatusRefunded
	case SaleStatusCompleted:
		return next == SaleStatusCancelled || next == SaleStatusRefunded
	default:
		return false
	}
}

// RequiresRestock reports whether entering this status returns the sold
// quantities to stock.
func (s SaleStatus) RequiresRestock() bool {
	return s == SaleStatusCancelled || s == SaleStatusRefunded
}

// SaleItem is one line of a sale. UnitPrice and UnitCost are captured at the
// moment of sale so later price changes never rewrite history.
type SaleItem struct {
	ID         uuid.UUID
	SaleID     uuid.UUID
	ProductID  uuid.UUID
	Quantity   int
	UnitPrice  decimal.Decimal
	UnitCost   decimal.Decimal
	TotalPrice decimal.Decimal
	Profit     decimal.Decimal
}

// PriceLine recomputes the line total and profit from quantity and the
// captured unit figures.
func (i *SaleItem) PriceLine() {
	qty := decimal.NewFromInt(int64(i.Quantity))
	i.TotalPrice = i.UnitPrice.Mul(qty)
	i.Profit = i.UnitPrice.Sub(i.UnitCost).Mul(qty)
}

// Sale is a customer transaction over one or more products.
type Sale struct {
	ID            uuid.UUID
	SaleNumber    string
	CustomerID    *uuid.UUID
	Items         []SaleItem
	Subtotal      decimal.Decimal
	Discount      decimal.Decimal
	Tax           decimal.Decimal
	TotalAmount   decimal.Decimal
	AmountPaid    decimal.Decimal
	Balance       decimal.Decimal
	TotalProfit   decimal.Decimal
	PaymentMethod PaymentMethod
	Status        SaleStatus
	Notes         string
	SoldBy        uuid.UUID
	SaleDate      time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RecomputeTotals derives subtotal, total, balance and profit from the line
// items and the discount/tax figures. Discount reduces and tax increases the
// amount owed.
func (s *Sale) RecomputeTotals() {
	subtotal := decimal.Zero
	profit := decimal.Zero
	for i := range s.Items {
		s.Items[i].PriceLine()
		subtotal = subtotal.Add(s.Items[i].TotalPrice)
		profit = profit.Add(s.Items[i].Profit)
	}

	s.Subtotal = subtotal
	s.TotalProfit = profit
	s.TotalAmount = subtotal.Sub(s.Discount).Add(s.Tax)
	s.Balance = s.TotalAmount.Sub(s.AmountPaid)
}

// DeriveStatus sets the initial status from payment coverage: fully paid
// sales complete immediately, anything else stays pending. It never touches
// cancelled or refunded sales.
func (s *Sale) DeriveStatus() {
	if s.Status == SaleStatusCancelled || s.Status == SaleStatusRefunded {
		return
	}

	if s.AmountPaid.GreaterThanOrEqual(s.TotalAmount) {
		s.Status = SaleStatusCompleted
	} else {
		s.Status = SaleStatusPending
	}
}

const saleNumberAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewSaleNumber generates a human-readable sale reference of the form
// SALE-YYYYMMDD-XXXX. Uniqueness is enforced by the database; callers retry
// on collision.
func NewSaleNumber(now time.Time) string {
	suffix := make([]byte, 4)
	for i := range suffix {
		suffix[i] = saleNumberAlphabet[rand.IntN(len(saleNumberAlphabet))]
	}

	return fmt.Sprintf("SALE-%s-%s", now.Format("20060102"), suffix)
}
