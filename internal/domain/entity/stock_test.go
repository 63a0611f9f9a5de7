package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveStockStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		current  int
		minLevel int
		expect   StockStatus
	}{
		{name: "zero stock", current: 0, minLevel: 5, expect: StockStatusOutOfStock},
		{name: "at threshold", current: 5, minLevel: 5, expect: StockStatusLowStock},
		{name: "below threshold", current: 3, minLevel: 5, expect: StockStatusLowStock},
		{name: "above threshold", current: 6, minLevel: 5, expect: StockStatusInStock},
		{name: "zero threshold with stock", current: 1, minLevel: 0, expect: StockStatusInStock},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expect, DeriveStockStatus(tt.current, tt.minLevel))
		})
	}
}

func TestApplyAdjustment_ClampsAtZero(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 15, ApplyAdjustment(10, 5))
	assert.Equal(t, 5, ApplyAdjustment(10, -5))
	assert.Equal(t, 0, ApplyAdjustment(10, -25))
}

func TestProduct_StockInfo(t *testing.T) {
	t.Parallel()

	product := &Product{CurrentStock: 2, MinStockLevel: 5, StockAlerts: true}
	info := product.StockInfo()

	assert.Equal(t, 2, info.CurrentStock)
	assert.Equal(t, StockStatusLowStock, info.Status)
	assert.True(t, info.AlertsEnabled)
}
