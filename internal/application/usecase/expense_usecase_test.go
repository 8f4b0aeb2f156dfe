package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/application/usecase"
	"github.com/khakhra/business-manager/internal/domain"
	"github.com/khakhra/business-manager/internal/domain/entity"
)

func TestExpenseCreate(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newTestStore(t))
	ctx := context.Background()

	resp, err := uc.Create(ctx, dto.CreateExpenseRequest{
		Category:    "Packaging",
		Description: "Bolsas para empaque",
		Amount:      decimal.NewFromInt(350),
	}, "Admin User")
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "Admin User", resp.CreatedBy)
	// Sin fecha en la petición se usa la fecha actual.
	assert.False(t, resp.Date.IsZero())

	list := uc.List(ctx)
	require.Len(t, list, 1)
	assert.Equal(t, resp.ID, list[0].ID)
}

func TestExpenseCreate_Invalido(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newTestStore(t))
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.CreateExpenseRequest{
		Category:    "Sobornos",
		Description: "x",
		Amount:      decimal.NewFromInt(10),
	}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidCategory)

	_, err = uc.Create(ctx, dto.CreateExpenseRequest{
		Category: "Rent",
		Amount:   decimal.NewFromInt(10),
	}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(ctx, dto.CreateExpenseRequest{
		Category:    "Rent",
		Description: "Renta de marzo",
		Amount:      decimal.Zero,
	}, "admin")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// Update conserva CreatedBy y, si no llega fecha, la fecha original.
func TestExpenseUpdate_ConservaAutorYFecha(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newTestStore(t))
	ctx := context.Background()

	date := time.Date(2026, time.March, 5, 0, 0, 0, 0, time.UTC)
	created, err := uc.Create(ctx, dto.CreateExpenseRequest{
		Category:    "Utilities",
		Description: "Factura de luz",
		Amount:      decimal.NewFromInt(900),
		Date:        date,
	}, "Accountant")
	require.NoError(t, err)

	resp, err := uc.Update(ctx, created.ID, dto.UpdateExpenseRequest{
		Category:    "Utilities",
		Description: "Factura de luz (corregida)",
		Amount:      decimal.NewFromInt(950),
	})
	require.NoError(t, err)

	assert.Equal(t, "Accountant", resp.CreatedBy)
	assert.True(t, resp.Date.Equal(date))
	assert.Equal(t, "Factura de luz (corregida)", resp.Description)

	// ID inexistente devuelve (nil, nil).
	resp, err = uc.Update(ctx, "no-existe", dto.UpdateExpenseRequest{
		Category:    "Rent",
		Description: "x",
		Amount:      decimal.NewFromInt(1),
	})
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestExpenseCategories(t *testing.T) {
	uc := usecase.NewExpenseUseCase(newTestStore(t))

	cats := uc.Categories()
	assert.Equal(t, entity.ExpenseCategories, cats)

	// Es una copia: mutarla no toca el conjunto canónico.
	cats[0] = "Hackeado"
	assert.Equal(t, "Packaging", entity.ExpenseCategories[0])
}
