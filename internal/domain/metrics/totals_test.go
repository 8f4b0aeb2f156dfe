package metrics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
)

// eqDec compara un decimal contra su representación esperada.
func eqDec(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"esperaba %s, obtuve %s (%v)", want, got.String(), msgAndArgs)
}

func item(productID string, qty int, price, cost int64) entity.OrderItem {
	return entity.OrderItem{
		ProductID:   productID,
		ProductName: "Producto " + productID,
		Quantity:    qty,
		Price:       decimal.NewFromInt(price),
		Cost:        decimal.NewFromInt(cost),
	}
}

// Caso de referencia: 2 unidades a 100 con GST 18% → 200 / 36 / 236.
func TestCalculateOrderTotals_GST18(t *testing.T) {
	totals := metrics.CalculateOrderTotals(
		[]entity.OrderItem{item("1", 2, 100, 50)},
		decimal.NewFromInt(18),
	)

	eqDec(t, "200", totals.Subtotal)
	eqDec(t, "36", totals.GSTAmount)
	eqDec(t, "236", totals.Total)
}

// Varias líneas se suman antes de aplicar el GST.
func TestCalculateOrderTotals_VariasLineas(t *testing.T) {
	totals := metrics.CalculateOrderTotals(
		[]entity.OrderItem{
			item("1", 2, 100, 50),
			item("2", 1, 50, 20),
		},
		decimal.NewFromInt(18),
	)

	eqDec(t, "250", totals.Subtotal)
	eqDec(t, "45", totals.GSTAmount)
	eqDec(t, "295", totals.Total)
}

// GST en cero: total igual al subtotal.
func TestCalculateOrderTotals_SinGST(t *testing.T) {
	totals := metrics.CalculateOrderTotals(
		[]entity.OrderItem{item("1", 3, 140, 70)},
		decimal.Zero,
	)

	eqDec(t, "420", totals.Subtotal)
	eqDec(t, "0", totals.GSTAmount)
	eqDec(t, "420", totals.Total)
}

// Sin líneas todo queda en cero; no hay pánico ni división.
func TestCalculateOrderTotals_SinLineas(t *testing.T) {
	totals := metrics.CalculateOrderTotals(nil, decimal.NewFromInt(18))

	assert.True(t, totals.Subtotal.IsZero())
	assert.True(t, totals.GSTAmount.IsZero())
	assert.True(t, totals.Total.IsZero())
}

// El COGS usa el costo congelado de cada línea, no el precio.
func TestOrderCOGS(t *testing.T) {
	order := entity.Order{Items: []entity.OrderItem{
		item("1", 2, 100, 50), // 100
		item("2", 3, 140, 70), // 210
	}}

	eqDec(t, "310", metrics.OrderCOGS(order))
}
