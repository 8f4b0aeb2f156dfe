package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
)

func salesOrder(customerID, status, paymentMethod, total string, items ...entity.OrderItem) entity.Order {
	o := order(total, status, time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC), items...)
	o.CustomerID = customerID
	o.PaymentMethod = paymentMethod
	return o
}

func TestTopProducts(t *testing.T) {
	orders := []entity.Order{
		salesOrder("1", entity.OrderStatusDelivered, "cash", "0",
			item("p1", 2, 100, 40),
			item("p2", 1, 300, 120),
		),
		salesOrder("2", entity.OrderStatusPending, "cash", "0",
			item("p1", 3, 100, 40),
		),
		salesOrder("3", entity.OrderStatusCancelled, "cash", "0",
			item("p3", 10, 100, 40),
		),
	}

	got := metrics.TopProducts(orders, 8)

	require.Len(t, got, 2)
	// p1 acumula 5 × 100 = 500 de ingreso y queda primero.
	assert.Equal(t, "p1", got[0].ProductID)
	assert.Equal(t, 5, got[0].Quantity)
	eqDec(t, "500", got[0].Revenue)
	assert.Equal(t, "p2", got[1].ProductID)
	eqDec(t, "300", got[1].Revenue)
}

func TestTopProducts_LimiteYEmpates(t *testing.T) {
	orders := []entity.Order{
		salesOrder("1", entity.OrderStatusDelivered, "cash", "0",
			item("a", 1, 100, 40),
			item("b", 1, 100, 40),
			item("c", 1, 200, 40),
		),
	}

	got := metrics.TopProducts(orders, 2)

	require.Len(t, got, 2)
	assert.Equal(t, "c", got[0].ProductID)
	// Con ingresos iguales gana la primera aparición.
	assert.Equal(t, "a", got[1].ProductID)
}

func TestTopProducts_LimiteInvalidoUsaDefault(t *testing.T) {
	var items []entity.OrderItem
	for _, id := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"} {
		items = append(items, item(id, 1, 100, 40))
	}
	orders := []entity.Order{salesOrder("1", entity.OrderStatusDelivered, "cash", "0", items...)}

	got := metrics.TopProducts(orders, 0)

	assert.Len(t, got, metrics.DefaultTopProducts)
}

// La distribución de estados cuenta también las canceladas, en orden canónico
// y con etiquetas capitalizadas.
func TestStatusDistribution(t *testing.T) {
	orders := []entity.Order{
		salesOrder("1", entity.OrderStatusCancelled, "cash", "0"),
		salesOrder("2", entity.OrderStatusPending, "cash", "0"),
		salesOrder("3", entity.OrderStatusPending, "cash", "0"),
		salesOrder("4", entity.OrderStatusDelivered, "cash", "0"),
	}

	got := metrics.StatusDistribution(orders)

	require.Len(t, got, 3)
	assert.Equal(t, metrics.Bucket{Label: "Pending", Count: 2}, got[0])
	assert.Equal(t, metrics.Bucket{Label: "Delivered", Count: 1}, got[1])
	assert.Equal(t, metrics.Bucket{Label: "Cancelled", Count: 1}, got[2])
}

func TestPaymentDistribution(t *testing.T) {
	orders := []entity.Order{
		salesOrder("1", entity.OrderStatusDelivered, "bank_transfer", "0"),
		salesOrder("2", entity.OrderStatusPending, "cash", "0"),
		salesOrder("3", entity.OrderStatusDelivered, "bank_transfer", "0"),
		salesOrder("4", entity.OrderStatusCancelled, "upi", "0"),
	}

	got := metrics.PaymentDistribution(orders)

	// Orden de primera aparición y etiquetas normalizadas; canceladas fuera.
	require.Len(t, got, 2)
	assert.Equal(t, metrics.Bucket{Label: "BANK TRANSFER", Count: 2}, got[0])
	assert.Equal(t, metrics.Bucket{Label: "CASH", Count: 1}, got[1])
}

func TestCustomerRepeatRate(t *testing.T) {
	orders := []entity.Order{
		salesOrder("c1", entity.OrderStatusDelivered, "cash", "0"),
		salesOrder("c1", entity.OrderStatusPending, "cash", "0"),
		salesOrder("c2", entity.OrderStatusDelivered, "cash", "0"),
		salesOrder("c3", entity.OrderStatusDelivered, "cash", "0"),
		salesOrder("c3", entity.OrderStatusCancelled, "cash", "0"),
	}

	m := metrics.CustomerRepeatRate(orders)

	assert.Equal(t, 3, m.TotalCustomers)
	assert.Equal(t, 1, m.RepeatCustomers)
	eqDec(t, "33.33", m.RepeatRate.Round(2))
	eqDec(t, "1.33", m.OrdersPerCustomer.Round(2))
}

func TestCustomerRepeatRate_SinClientes(t *testing.T) {
	m := metrics.CustomerRepeatRate(nil)

	assert.Equal(t, 0, m.TotalCustomers)
	eqDec(t, "0", m.RepeatRate)
	eqDec(t, "0", m.OrdersPerCustomer)
}

func TestSummarizeSales(t *testing.T) {
	orders := []entity.Order{
		salesOrder("1", entity.OrderStatusDelivered, "cash", "300"),
		salesOrder("2", entity.OrderStatusPending, "cash", "100"),
		salesOrder("3", entity.OrderStatusCancelled, "cash", "999"),
	}

	s := metrics.SummarizeSales(orders)

	eqDec(t, "400", s.TotalRevenue)
	assert.Equal(t, 2, s.TotalOrders)
	eqDec(t, "200", s.AvgOrderValue)
}

func TestSummarizeSales_SinOrdenes(t *testing.T) {
	s := metrics.SummarizeSales(nil)

	eqDec(t, "0", s.TotalRevenue)
	assert.Equal(t, 0, s.TotalOrders)
	eqDec(t, "0", s.AvgOrderValue)
}
