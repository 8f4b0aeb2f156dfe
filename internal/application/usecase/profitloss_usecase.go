package usecase

import (
	"context"
	"time"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/domain/metrics"
	"github.com/khakhra/business-manager/internal/domain/repository"
)

// ProfitLossUseCase arma el estado de resultados de un período. Todo se
// deriva en el momento desde órdenes y gastos almacenados; no hay agregados
// persistidos que puedan quedar desactualizados.
type ProfitLossUseCase struct {
	store repository.RecordStore
	now   func() time.Time
}

// NewProfitLossUseCase construye el caso de uso.
func NewProfitLossUseCase(store repository.RecordStore) *ProfitLossUseCase {
	return &ProfitLossUseCase{store: store, now: time.Now}
}

// Statement calcula el estado de resultados del período. Un período
// desconocido degrada al mes en curso; en "custom" los límites faltantes
// degradan al mes en curso.
func (uc *ProfitLossUseCase) Statement(ctx context.Context, period string, customStart, customEnd *time.Time) *dto.ProfitLossResponse {
	p := metrics.Period(period)
	r := metrics.PeriodRange(p, uc.now(), customStart, customEnd)

	orders := uc.store.Orders(ctx)
	expenses := uc.store.Expenses(ctx)

	st := metrics.ProfitLossForRange(orders, expenses, r)
	prevRevenue, growth := metrics.RevenueGrowth(orders, r, st.Revenue)
	breakdown := metrics.ExpenseBreakdown(expenses, r)

	byCategory := make([]dto.CategoryAmountResponse, 0, len(breakdown))
	for _, b := range breakdown {
		byCategory = append(byCategory, dto.CategoryAmountResponse{
			Category: b.Category,
			Amount:   b.Amount.Round(2),
		})
	}

	return &dto.ProfitLossResponse{
		Period:    string(p),
		StartDate: r.Start,
		EndDate:   r.End,

		Revenue:       st.Revenue.Round(2),
		COGS:          st.COGS.Round(2),
		GrossProfit:   st.GrossProfit.Round(2),
		TotalExpenses: st.TotalExpenses.Round(2),
		NetProfit:     st.NetProfit.Round(2),

		GrossMargin:  st.GrossMargin.Round(2),
		ProfitMargin: st.ProfitMargin.Round(2),
		COGSPercent:  st.COGSPct.Round(2),

		OrderCount:    st.OrderCount,
		ExpenseCount:  st.ExpenseCount,
		AvgOrderValue: st.AvgOrderValue.Round(2),

		PreviousRevenue: prevRevenue.Round(2),
		RevenueGrowth:   growth.Round(2),

		ExpenseBreakdown: byCategory,
	}
}
