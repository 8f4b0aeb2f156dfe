package metrics_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
)

func marchRange() metrics.DateRange {
	return metrics.DateRange{
		Start: time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, time.March, 31, 23, 59, 59, 0, time.UTC),
	}
}

func order(total string, status string, at time.Time, items ...entity.OrderItem) entity.Order {
	return entity.Order{
		Total:     decimal.RequireFromString(total),
		Status:    status,
		CreatedAt: at,
		Items:     items,
	}
}

func expense(category, amount string, at time.Time) entity.Expense {
	return entity.Expense{
		Category: category,
		Amount:   decimal.RequireFromString(amount),
		Date:     at,
	}
}

func TestProfitLossForRange(t *testing.T) {
	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order("600", entity.OrderStatusDelivered, at, item("1", 2, 300, 120)),
		order("400", entity.OrderStatusPending, at, item("2", 1, 400, 160)),
	}
	expenses := []entity.Expense{
		expense("Rent", "200", at),
		expense("Labor", "100", at),
	}

	st := metrics.ProfitLossForRange(orders, expenses, marchRange())

	eqDec(t, "1000", st.Revenue)
	eqDec(t, "400", st.COGS)
	eqDec(t, "600", st.GrossProfit)
	eqDec(t, "300", st.TotalExpenses)
	eqDec(t, "300", st.NetProfit)
	eqDec(t, "60", st.GrossMargin)
	eqDec(t, "30", st.ProfitMargin)
	eqDec(t, "40", st.COGSPct)
	assert.Equal(t, 2, st.OrderCount)
	assert.Equal(t, 2, st.ExpenseCount)
	eqDec(t, "500", st.AvgOrderValue)
}

// Las órdenes canceladas no aportan ingresos ni COGS.
func TestProfitLossForRange_ExcluyeCanceladas(t *testing.T) {
	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order("500", entity.OrderStatusDelivered, at, item("1", 1, 500, 200)),
		order("900", entity.OrderStatusCancelled, at, item("1", 3, 300, 100)),
	}

	st := metrics.ProfitLossForRange(orders, nil, marchRange())

	eqDec(t, "500", st.Revenue)
	eqDec(t, "200", st.COGS)
	assert.Equal(t, 1, st.OrderCount)
}

func TestProfitLossForRange_FueraDeRango(t *testing.T) {
	dentro := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	fuera := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order("100", entity.OrderStatusDelivered, dentro),
		order("999", entity.OrderStatusDelivered, fuera),
	}
	expenses := []entity.Expense{
		expense("Rent", "50", dentro),
		expense("Rent", "777", fuera),
	}

	st := metrics.ProfitLossForRange(orders, expenses, marchRange())

	eqDec(t, "100", st.Revenue)
	eqDec(t, "50", st.TotalExpenses)
	assert.Equal(t, 1, st.OrderCount)
	assert.Equal(t, 1, st.ExpenseCount)
}

// Sin ingresos los márgenes quedan en cero en vez de dividir por cero.
func TestProfitLossForRange_SinIngresos(t *testing.T) {
	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	expenses := []entity.Expense{expense("Rent", "120", at)}

	st := metrics.ProfitLossForRange(nil, expenses, marchRange())

	eqDec(t, "0", st.Revenue)
	eqDec(t, "120", st.TotalExpenses)
	eqDec(t, "-120", st.NetProfit)
	eqDec(t, "0", st.GrossMargin)
	eqDec(t, "0", st.ProfitMargin)
	eqDec(t, "0", st.COGSPct)
	eqDec(t, "0", st.AvgOrderValue)
}

func TestRevenueGrowth(t *testing.T) {
	r := marchRange()
	prevAt := time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	orders := []entity.Order{
		order("800", entity.OrderStatusDelivered, prevAt),
		order("200", entity.OrderStatusCancelled, prevAt),
	}

	prev, growth := metrics.RevenueGrowth(orders, r, decimal.RequireFromString("1000"))

	eqDec(t, "800", prev)
	eqDec(t, "25", growth)
}

// Sin ingresos en el período anterior el crecimiento reporta cero.
func TestRevenueGrowth_SinPeriodoAnterior(t *testing.T) {
	prev, growth := metrics.RevenueGrowth(nil, marchRange(), decimal.RequireFromString("1000"))

	eqDec(t, "0", prev)
	eqDec(t, "0", growth)
}

func TestExpenseBreakdown(t *testing.T) {
	at := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	fuera := time.Date(2026, time.April, 2, 12, 0, 0, 0, time.UTC)
	expenses := []entity.Expense{
		expense("Rent", "300", at),
		expense("Packaging", "50", at),
		expense("Packaging", "25", at),
		expense("Marketing", "500", fuera),
	}

	got := metrics.ExpenseBreakdown(expenses, marchRange())

	// Sigue el orden canónico de categorías y omite las vacías.
	assert.Len(t, got, 2)
	assert.Equal(t, "Packaging", got[0].Category)
	eqDec(t, "75", got[0].Amount)
	assert.Equal(t, "Rent", got[1].Category)
	eqDec(t, "300", got[1].Amount)
}
