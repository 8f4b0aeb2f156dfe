package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/application/usecase"
)

func TestProfitLossStatement(t *testing.T) {
	store := newTestStore(t)
	orderUC := usecase.NewOrderUseCase(store, 18)
	expenseUC := usecase.NewExpenseUseCase(store)
	uc := usecase.NewProfitLossUseCase(store)
	ctx := context.Background()

	// 2 packs a 120 con GST 18%: revenue 283.20, COGS 120.
	_, err := orderUC.Create(ctx, createRequest())
	require.NoError(t, err)
	_, err = expenseUC.Create(ctx, dto.CreateExpenseRequest{
		Category:    "Delivery",
		Description: "Envío local",
		Amount:      decimal.NewFromInt(50),
	}, "admin")
	require.NoError(t, err)

	resp := uc.Statement(ctx, "month", nil, nil)

	assert.Equal(t, "month", resp.Period)
	eqDec(t, "283.2", resp.Revenue)
	eqDec(t, "120", resp.COGS)
	eqDec(t, "163.2", resp.GrossProfit)
	eqDec(t, "50", resp.TotalExpenses)
	eqDec(t, "113.2", resp.NetProfit)
	assert.Equal(t, 1, resp.OrderCount)
	assert.Equal(t, 1, resp.ExpenseCount)
	eqDec(t, "283.2", resp.AvgOrderValue)

	// Sin ventas el mes anterior el crecimiento queda en cero.
	eqDec(t, "0", resp.PreviousRevenue)
	eqDec(t, "0", resp.RevenueGrowth)

	require.Len(t, resp.ExpenseBreakdown, 1)
	assert.Equal(t, "Delivery", resp.ExpenseBreakdown[0].Category)
	eqDec(t, "50", resp.ExpenseBreakdown[0].Amount)
}

// Un período desconocido degrada al mes en curso.
func TestProfitLossStatement_PeriodoDesconocido(t *testing.T) {
	uc := usecase.NewProfitLossUseCase(newTestStore(t))

	resp := uc.Statement(context.Background(), "quarter", nil, nil)

	assert.Equal(t, 1, resp.StartDate.Day())
	eqDec(t, "0", resp.Revenue)
	assert.Empty(t, resp.ExpenseBreakdown)
}
