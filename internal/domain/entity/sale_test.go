package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestSale_RecomputeTotals(t *testing.T) {
	t.Parallel()

	sale := &Sale{
		Items: []SaleItem{
			{Quantity: 2, UnitPrice: dec("150.00"), UnitCost: dec("100.00")},
			{Quantity: 1, UnitPrice: dec("45.50"), UnitCost: dec("30.00")},
		},
		Discount:   dec("20.00"),
		Tax:        dec("10.00"),
		AmountPaid: dec("300.00"),
	}

	sale.RecomputeTotals()

	assert.True(t, sale.Subtotal.Equal(dec("345.50")), "subtotal: %s", sale.Subtotal)
	assert.True(t, sale.TotalAmount.Equal(dec("335.50")), "total: %s", sale.TotalAmount)
	assert.True(t, sale.Balance.Equal(dec("35.50")), "balance: %s", sale.Balance)
	// Line profit is (price - cost) * qty captured at sale time.
	assert.True(t, sale.TotalProfit.Equal(dec("115.50")), "profit: %s", sale.TotalProfit)
	assert.True(t, sale.Items[0].TotalPrice.Equal(dec("300.00")))
	assert.True(t, sale.Items[0].Profit.Equal(dec("100.00")))
}

func TestSale_DeriveStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		paid   string
		total  string
		expect SaleStatus
	}{
		{name: "fully paid", paid: "100", total: "100", expect: SaleStatusCompleted},
		{name: "overpaid", paid: "120", total: "100", expect: SaleStatusCompleted},
		{name: "partial payment", paid: "40", total: "100", expect: SaleStatusPending},
		{name: "unpaid", paid: "0", total: "100", expect: SaleStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			sale := &Sale{AmountPaid: dec(tt.paid), TotalAmount: dec(tt.total)}
			sale.DeriveStatus()
			assert.Equal(t, tt.expect, sale.Status)
		})
	}
}

func TestSale_DeriveStatus_TerminalStatesUntouched(t *testing.T) {
	t.Parallel()

	sale := &Sale{Status: SaleStatusRefunded, AmountPaid: dec("100"), TotalAmount: dec("100")}
	sale.DeriveStatus()
	assert.Equal(t, SaleStatusRefunded, sale.Status)
}

func TestSaleStatus_CanTransitionTo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		from    SaleStatus
		to      SaleStatus
		allowed bool
	}{
		{SaleStatusPending, SaleStatusCompleted, true},
		{SaleStatusPending, SaleStatusCancelled, true},
		{SaleStatusPending, SaleStatusRefunded, true},
		{SaleStatusCompleted, SaleStatusRefunded, true},
		{SaleStatusCompleted, SaleStatusCancelled, true},
		{SaleStatusCompleted, SaleStatusPending, false},
		{SaleStatusCancelled, SaleStatusPending, false},
		{SaleStatusCancelled, SaleStatusCompleted, false},
		{SaleStatusRefunded, SaleStatusCompleted, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"_to_"+tt.to.String(), func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestSaleStatus_RequiresRestock(t *testing.T) {
	t.Parallel()

	assert.True(t, SaleStatusCancelled.RequiresRestock())
	assert.True(t, SaleStatusRefunded.RequiresRestock())
	assert.False(t, SaleStatusCompleted.RequiresRestock())
	assert.False(t, SaleStatusPending.RequiresRestock())
}

func TestNewSaleNumber(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	number := NewSaleNumber(now)

	require.Regexp(t, regexp.MustCompile(`^SALE-20250314-[0-9A-Z]{4}$`), number)
}
