package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/khakhra/business-manager/internal/domain/access"
	"github.com/khakhra/business-manager/internal/domain/entity"
)

func TestTabsFor(t *testing.T) {
	assert.Equal(t, access.AllTabs, access.TabsFor(entity.RoleAdmin))

	assert.Equal(t,
		[]access.Tab{access.TabOrders, access.TabInventory, access.TabCustomers},
		access.TabsFor(entity.RoleStaff),
	)

	assert.Equal(t,
		[]access.Tab{access.TabOrders, access.TabExpenses, access.TabProfitLoss, access.TabAnalytics},
		access.TabsFor(entity.RoleAccountant),
	)
}

// Un rol desconocido no ve ninguna pestaña.
func TestTabsFor_RolDesconocido(t *testing.T) {
	assert.Nil(t, access.TabsFor("superuser"))
	assert.Nil(t, access.TabsFor(""))
}

// TabsFor entrega una copia: mutarla no altera la tabla.
func TestTabsFor_DevuelveCopia(t *testing.T) {
	tabs := access.TabsFor(entity.RoleStaff)
	tabs[0] = access.TabExpenses

	assert.False(t, access.Allowed(entity.RoleStaff, access.TabExpenses))
}

func TestAllowed(t *testing.T) {
	assert.True(t, access.Allowed(entity.RoleAdmin, access.TabExpenses))
	assert.True(t, access.Allowed(entity.RoleStaff, access.TabInventory))
	assert.False(t, access.Allowed(entity.RoleStaff, access.TabProfitLoss))
	assert.True(t, access.Allowed(entity.RoleAccountant, access.TabAnalytics))
	assert.False(t, access.Allowed(entity.RoleAccountant, access.TabInventory))
	assert.False(t, access.Allowed("superuser", access.TabOrders))
}
