package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPermissions(t *testing.T) {
	t.Parallel()

	owner := DefaultPermissions(RoleBusinessOwner)
	assert.True(t, owner.ViewProfits)
	assert.True(t, owner.ManageUsers)
	assert.True(t, owner.ManageSuppliers)

	manager := DefaultPermissions(RoleSalesManager)
	assert.False(t, manager.ViewProfits)
	assert.False(t, manager.ManageUsers)
	assert.True(t, manager.ViewReports)
	assert.True(t, manager.ManageInventory)

	seller := DefaultPermissions(RoleSalesperson)
	assert.True(t, seller.ManageSales)
	assert.True(t, seller.ManageCustomers)
	assert.False(t, seller.ViewReports)
	assert.False(t, seller.ManageInventory)
}

func TestPermissionSet_HasAndSet(t *testing.T) {
	t.Parallel()

	var perms PermissionSet
	assert.False(t, perms.Has(PermissionManageSales))

	assert.True(t, perms.Set(PermissionManageSales, true))
	assert.True(t, perms.Has(PermissionManageSales))

	assert.False(t, perms.Set("fly_to_moon", true))
	assert.False(t, perms.Has("fly_to_moon"))
}

func TestCustomer_RecordAndReversePurchase(t *testing.T) {
	t.Parallel()

	customer := &Customer{}
	at := customer.CreatedAt

	customer.RecordPurchase(dec("250.00"), at)
	customer.RecordPurchase(dec("100.00"), at)
	assert.True(t, customer.TotalSpent.Equal(dec("350.00")))
	assert.Equal(t, 2, customer.PurchaseCount)

	customer.ReversePurchase(dec("250.00"))
	assert.True(t, customer.TotalSpent.Equal(dec("100.00")))
	assert.Equal(t, 1, customer.PurchaseCount)

	// Totals clamp at zero even if reversal exceeds what was recorded.
	customer.ReversePurchase(dec("999.00"))
	assert.True(t, customer.TotalSpent.IsZero())
	assert.Equal(t, 0, customer.PurchaseCount)
}
