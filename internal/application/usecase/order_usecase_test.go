package usecase_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/application/usecase"
	"github.com/khakhra/business-manager/internal/domain"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/infrastructure/storage"
	"github.com/khakhra/business-manager/pkg/logger"
)

func newTestStore(t *testing.T) *storage.Service {
	t.Helper()
	backend, err := storage.NewFileBackend(filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	return storage.New(backend, logger.New(logger.Config{Env: "production", Level: "error"}))
}

func eqDec(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, decimal.RequireFromString(want).Equal(got),
		"esperaba %s, obtuve %s", want, got.String())
}

func createRequest() dto.CreateOrderRequest {
	return dto.CreateOrderRequest{
		CustomerID:    "1",
		Items:         []dto.OrderItemRequest{{ProductID: "1", Quantity: 2}},
		PaymentMethod: "cash",
	}
}

// 2 packs de Plain Khakhra a 120 con el GST por defecto de 18%.
func TestOrderCreate(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewOrderUseCase(store, 18)
	ctx := context.Background()

	resp, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)

	eqDec(t, "240", resp.Subtotal)
	eqDec(t, "43.2", resp.GSTAmount)
	eqDec(t, "283.2", resp.Total)
	eqDec(t, "18", resp.GSTRate)
	assert.Equal(t, entity.OrderStatusPending, resp.Status)
	assert.Equal(t, entity.PaymentStatusPending, resp.PaymentStatus)

	// Snapshot del cliente congelado en la orden.
	assert.Equal(t, "Rajesh Patel", resp.CustomerName)
	assert.Equal(t, "24AAAAA0000A1Z5", resp.CustomerGST)

	// El stock del producto se descuenta al crear.
	assert.Equal(t, 498, store.Products(ctx)[0].Stock)
}

func TestOrderCreate_TasaPropia(t *testing.T) {
	uc := usecase.NewOrderUseCase(newTestStore(t), 18)

	in := createRequest()
	in.GSTRate = decimal.NewFromInt(5)
	resp, err := uc.Create(context.Background(), in)
	require.NoError(t, err)

	eqDec(t, "5", resp.GSTRate)
	eqDec(t, "252", resp.Total)
}

func TestOrderCreate_EntradasInvalidas(t *testing.T) {
	uc := usecase.NewOrderUseCase(newTestStore(t), 18)
	ctx := context.Background()

	sinItems := createRequest()
	sinItems.Items = nil
	_, err := uc.Create(ctx, sinItems)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	metodoInvalido := createRequest()
	metodoInvalido.PaymentMethod = "cheque"
	_, err = uc.Create(ctx, metodoInvalido)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	cantidadInvalida := createRequest()
	cantidadInvalida.Items = []dto.OrderItemRequest{{ProductID: "1", Quantity: 0}}
	_, err = uc.Create(ctx, cantidadInvalida)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	tasaNegativa := createRequest()
	tasaNegativa.GSTRate = decimal.NewFromInt(-1)
	_, err = uc.Create(ctx, tasaNegativa)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderCreate_ReferenciasInexistentes(t *testing.T) {
	uc := usecase.NewOrderUseCase(newTestStore(t), 18)
	ctx := context.Background()

	clienteInexistente := createRequest()
	clienteInexistente.CustomerID = "no-existe"
	_, err := uc.Create(ctx, clienteInexistente)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	productoInexistente := createRequest()
	productoInexistente.Items = []dto.OrderItemRequest{{ProductID: "no-existe", Quantity: 1}}
	_, err = uc.Create(ctx, productoInexistente)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestOrderUpdateStatus(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewOrderUseCase(store, 18)
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)

	resp, err := uc.UpdateStatus(ctx, created.ID, entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusShipped, resp.Status)

	_, err = uc.UpdateStatus(ctx, created.ID, "archived")
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)

	// ID inexistente devuelve (nil, nil); el handler lo mapea a 404.
	resp, err = uc.UpdateStatus(ctx, "no-existe", entity.OrderStatusShipped)
	require.NoError(t, err)
	assert.Nil(t, resp)
}

// Cancelar una orden no repone el stock descontado.
func TestOrderCancel_NoReponeStock(t *testing.T) {
	store := newTestStore(t)
	uc := usecase.NewOrderUseCase(store, 18)
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)
	require.Equal(t, 498, store.Products(ctx)[0].Stock)

	_, err = uc.UpdateStatus(ctx, created.ID, entity.OrderStatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, 498, store.Products(ctx)[0].Stock)
}

func TestOrderUpdatePayment(t *testing.T) {
	uc := usecase.NewOrderUseCase(newTestStore(t), 18)
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)

	resp, err := uc.UpdatePayment(ctx, created.ID, entity.PaymentStatusPaid)
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusPaid, resp.PaymentStatus)

	_, err = uc.UpdatePayment(ctx, created.ID, "refunded")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestOrderGetByID(t *testing.T) {
	uc := usecase.NewOrderUseCase(newTestStore(t), 18)
	ctx := context.Background()

	created, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)

	resp, err := uc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, created.ID, resp.ID)

	resp, err = uc.GetByID(ctx, "no-existe")
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestOrderList_MasRecientePrimero(t *testing.T) {
	uc := usecase.NewOrderUseCase(newTestStore(t), 18)
	ctx := context.Background()

	first, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)
	second, err := uc.Create(ctx, createRequest())
	require.NoError(t, err)

	list := uc.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}
