package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryAmountResponse gasto acumulado de una categoría dentro del rango.
type CategoryAmountResponse struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// ProfitLossResponse estado de resultados de un período. Todos los montos
// van redondeados a 2 decimales; los cálculos internos no redondean.
type ProfitLossResponse struct {
	Period    string    `json:"period"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`

	Revenue       decimal.Decimal `json:"revenue"`
	COGS          decimal.Decimal `json:"cogs"`
	GrossProfit   decimal.Decimal `json:"grossProfit"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
	NetProfit     decimal.Decimal `json:"netProfit"`

	GrossMargin  decimal.Decimal `json:"grossMargin"`
	ProfitMargin decimal.Decimal `json:"profitMargin"`
	COGSPercent  decimal.Decimal `json:"cogsPercent"`

	OrderCount    int             `json:"orderCount"`
	ExpenseCount  int             `json:"expenseCount"`
	AvgOrderValue decimal.Decimal `json:"avgOrderValue"`

	PreviousRevenue decimal.Decimal `json:"previousRevenue"`
	RevenueGrowth   decimal.Decimal `json:"revenueGrowth"`

	ExpenseBreakdown []CategoryAmountResponse `json:"expenseBreakdown"`
}
