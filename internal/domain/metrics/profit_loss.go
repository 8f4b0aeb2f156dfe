package metrics

import (
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ComparisonOffsetMonths es el corrimiento del período de comparación para el
// crecimiento de ingresos: siempre un mes calendario exacto hacia atrás,
// independiente del preset activo. No es "una ventana del mismo largo": con
// preset "today" o "week" se compara contra el mismo día/semana del mes
// anterior. Comportamiento heredado y mantenido a propósito.
const ComparisonOffsetMonths = 1

// ProfitLossStatement es el estado de resultados de un rango de fechas.
type ProfitLossStatement struct {
	Revenue       decimal.Decimal // Σ total de órdenes no canceladas del rango
	COGS          decimal.Decimal // Σ (cost × qty) sobre las líneas de esas órdenes
	GrossProfit   decimal.Decimal // Revenue - COGS
	TotalExpenses decimal.Decimal // Σ amount de gastos del rango
	NetProfit     decimal.Decimal // GrossProfit - TotalExpenses
	GrossMargin   decimal.Decimal // GrossProfit / Revenue × 100 (0 si Revenue = 0)
	ProfitMargin  decimal.Decimal // NetProfit / Revenue × 100 (0 si Revenue = 0)
	COGSPct       decimal.Decimal // COGS / Revenue × 100 (0 si Revenue = 0)
	OrderCount    int
	ExpenseCount  int
	AvgOrderValue decimal.Decimal // Revenue / OrderCount (0 si no hay órdenes)
}

// ProfitLossForRange agrega órdenes y gastos dentro del rango.
// Órdenes: createdAt dentro del rango y estado distinto de cancelled.
// Gastos: date dentro del rango.
func ProfitLossForRange(orders []entity.Order, expenses []entity.Expense, r DateRange) ProfitLossStatement {
	var st ProfitLossStatement
	st.Revenue = decimal.Zero
	st.COGS = decimal.Zero
	st.TotalExpenses = decimal.Zero

	for _, o := range orders {
		if o.IsCancelled() || !r.Contains(o.CreatedAt) {
			continue
		}
		st.Revenue = st.Revenue.Add(o.Total)
		st.COGS = st.COGS.Add(OrderCOGS(o))
		st.OrderCount++
	}
	for _, e := range expenses {
		if !r.Contains(e.Date) {
			continue
		}
		st.TotalExpenses = st.TotalExpenses.Add(e.Amount)
		st.ExpenseCount++
	}

	st.GrossProfit = st.Revenue.Sub(st.COGS)
	st.NetProfit = st.GrossProfit.Sub(st.TotalExpenses)
	st.GrossMargin = percent(st.GrossProfit, st.Revenue)
	st.ProfitMargin = percent(st.NetProfit, st.Revenue)
	st.COGSPct = percent(st.COGS, st.Revenue)
	if st.OrderCount > 0 {
		st.AvgOrderValue = st.Revenue.Div(decimal.NewFromInt(int64(st.OrderCount)))
	} else {
		st.AvgOrderValue = decimal.Zero
	}
	return st
}

// CategoryAmount es el acumulado de gasto de una categoría.
type CategoryAmount struct {
	Category string
	Amount   decimal.Decimal
}

// ExpenseBreakdown agrupa los gastos del rango por categoría, siguiendo el
// orden canónico de categorías y omitiendo las que no tuvieron gasto.
func ExpenseBreakdown(expenses []entity.Expense, r DateRange) []CategoryAmount {
	sums := make(map[string]decimal.Decimal, len(entity.ExpenseCategories))
	for _, e := range expenses {
		if !r.Contains(e.Date) {
			continue
		}
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}
	out := make([]CategoryAmount, 0, len(sums))
	for _, cat := range entity.ExpenseCategories {
		if s, ok := sums[cat]; ok && !s.IsZero() {
			out = append(out, CategoryAmount{Category: cat, Amount: s})
		}
	}
	return out
}

// RevenueGrowth compara revenue contra el mismo rango corrido
// ComparisonOffsetMonths hacia atrás. Devuelve los ingresos del período
// anterior y el crecimiento porcentual (0 si el período anterior no tuvo
// ingresos).
func RevenueGrowth(orders []entity.Order, r DateRange, revenue decimal.Decimal) (prevRevenue, growth decimal.Decimal) {
	prev := DateRange{
		Start: r.Start.AddDate(0, -ComparisonOffsetMonths, 0),
		End:   r.End.AddDate(0, -ComparisonOffsetMonths, 0),
	}
	prevRevenue = decimal.Zero
	for _, o := range orders {
		if o.IsCancelled() || !prev.Contains(o.CreatedAt) {
			continue
		}
		prevRevenue = prevRevenue.Add(o.Total)
	}
	if !prevRevenue.IsPositive() {
		return prevRevenue, decimal.Zero
	}
	growth = revenue.Sub(prevRevenue).Div(prevRevenue).Mul(hundred)
	return prevRevenue, growth
}
