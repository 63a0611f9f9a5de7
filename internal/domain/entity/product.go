// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Category classifies a product within the foam catalog.
type Category string

const (
	CategoryMattress Category = "mattress"
	CategoryPillow   Category = "pillow"
	CategoryFootMat  Category = "foot_mat"
	CategoryBedsheet Category = "bedsheet"
	CategoryOthers   Category = "others"
)

// AllCategories lists every valid product category.
func AllCategories() []Category {
	return []Category{CategoryMattress, CategoryPillow, CategoryFootMat, CategoryBedsheet, CategoryOthers}
}

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is a valid value.
func (c Category) IsValid() bool {
	switch c {
	case CategoryMattress, CategoryPillow, CategoryFootMat, CategoryBedsheet, CategoryOthers:
		return true
	default:
		return false
	}
}

// Dimensions holds the physical attributes of a product.
// Thickness and Density are mandatory for mattresses; length and width are optional.
type Dimensions struct {
	Thickness float64 // inches
	Density   float64 // density rating
	Length    float64
	Width     float64
}

// Product is a catalog item. CurrentStock is the single authoritative stock
// counter; it is mutated only inside the sale transaction or through a manual
// stock adjustment.
type Product struct {
	ID            uuid.UUID
	Name          string
	Category      Category
	Dimensions    *Dimensions
	SupplierID    uuid.UUID
	UnitCost      decimal.Decimal
	SellingPrice  decimal.Decimal
	SKU           string
	Description   string
	Tags          []string
	CurrentStock  int
	MinStockLevel int
	MaxStockLevel int
	StockAlerts   bool
	IsActive      bool
	LastRestocked *time.Time
	LastSold      *time.Time
	LastChecked   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ProfitMargin returns the margin over unit cost as a percentage.
// Returns zero when the unit cost is zero.
func (p *Product) ProfitMargin() decimal.Decimal {
	if p.UnitCost.IsZero() {
		return decimal.Zero
	}

	return p.SellingPrice.Sub(p.UnitCost).
		Div(p.UnitCost).
		Mul(decimal.NewFromInt(100))
}

// UnitProfit returns the profit earned per unit sold at the current prices.
func (p *Product) UnitProfit() decimal.Decimal {
	return p.SellingPrice.Sub(p.UnitCost)
}

// StockStatus derives the stock ledger status from the current counter and
// the minimum threshold. It is never stored as independently-settable truth.
func (p *Product) StockStatus() StockStatus {
	return DeriveStockStatus(p.CurrentStock, p.MinStockLevel)
}

// StockInfo returns the stock ledger read model for this product.
func (p *Product) StockInfo() StockInfo {
	return StockInfo{
		CurrentStock:  p.CurrentStock,
		Status:        p.StockStatus(),
		AlertsEnabled: p.StockAlerts,
	}
}

// RequiresDimensions reports whether the category mandates thickness/density.
func (p *Product) RequiresDimensions() bool {
	return p.Category == CategoryMattress
}

const skuAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewSKU generates a stock keeping unit of the form CAT-XXXXXX-NNNN:
// category prefix, six random base36 characters and the tail of the clock.
func NewSKU(category Category, now time.Time) string {
	prefix := strings.ToUpper(category.String())
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = skuAlphabet[rand.IntN(len(skuAlphabet))]
	}

	millis := now.UnixMilli() % 10000

	return fmt.Sprintf("%s-%s-%04d", prefix, suffix, millis)
}
