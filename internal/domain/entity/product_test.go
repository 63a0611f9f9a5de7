package entity

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProduct_ProfitMargin(t *testing.T) {
	t.Parallel()

	product := &Product{UnitCost: dec("100"), SellingPrice: dec("150")}
	assert.True(t, product.ProfitMargin().Equal(dec("50")))

	free := &Product{UnitCost: dec("0"), SellingPrice: dec("150")}
	assert.True(t, free.ProfitMargin().IsZero())
}

func TestProduct_RequiresDimensions(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Product{Category: CategoryMattress}).RequiresDimensions())
	assert.False(t, (&Product{Category: CategoryPillow}).RequiresDimensions())
}

func TestCategory_IsValid(t *testing.T) {
	t.Parallel()

	for _, c := range AllCategories() {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, Category("sofa").IsValid())
}

func TestNewSKU(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 3, 14, 15, 9, 26, 531000000, time.UTC)
	sku := NewSKU(CategoryMattress, now)

	require.Regexp(t, regexp.MustCompile(`^MAT-[0-9A-Z]{6}-\d{4}$`), sku)
}
