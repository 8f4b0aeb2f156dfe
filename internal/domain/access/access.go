// Package access define la tabla estática rol → pestañas permitidas que
// consume cualquier capa de presentación. Es un filtro de UI, no una frontera
// de seguridad: el backend no oculta datos según el rol.
package access

import "github.com/khakhra/business-manager/internal/domain/entity"

// Tab identifica una capacidad visible de la aplicación.
type Tab string

// Pestañas de la aplicación.
const (
	TabOrders     Tab = "orders"
	TabInventory  Tab = "inventory"
	TabExpenses   Tab = "expenses"
	TabProfitLoss Tab = "profitloss"
	TabAnalytics  Tab = "analytics"
	TabCustomers  Tab = "customers"
)

// AllTabs en el orden en que la UI las presenta.
var AllTabs = []Tab{TabOrders, TabInventory, TabExpenses, TabProfitLoss, TabAnalytics, TabCustomers}

// tabsByRole reproduce exactamente la tabla de acceso original:
// admin ve todo; staff opera órdenes, inventario y clientes; accountant ve
// órdenes, gastos, P&L y analítica.
var tabsByRole = map[string][]Tab{
	entity.RoleAdmin:      {TabOrders, TabInventory, TabExpenses, TabProfitLoss, TabAnalytics, TabCustomers},
	entity.RoleStaff:      {TabOrders, TabInventory, TabCustomers},
	entity.RoleAccountant: {TabOrders, TabExpenses, TabProfitLoss, TabAnalytics},
}

// TabsFor devuelve las pestañas permitidas para un rol. Rol desconocido no ve nada.
func TabsFor(role string) []Tab {
	tabs, ok := tabsByRole[role]
	if !ok {
		return nil
	}
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// Allowed indica si el rol tiene acceso a la pestaña.
func Allowed(role string, tab Tab) bool {
	for _, t := range tabsByRole[role] {
		if t == tab {
			return true
		}
	}
	return false
}
