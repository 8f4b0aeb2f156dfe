package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/infrastructure/storage"
	"github.com/khakhra/business-manager/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newTestService(t *testing.T) (*storage.Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.json")
	backend, err := storage.NewFileBackend(path)
	require.NoError(t, err)
	return storage.New(backend, testLogger()), path
}

func reopen(t *testing.T, path string) *storage.Service {
	t.Helper()
	backend, err := storage.NewFileBackend(path)
	require.NoError(t, err)
	return storage.New(backend, testLogger())
}

// Un almacén recién creado responde con los datos seed.
func TestService_DatosSeed(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	assert.Len(t, svc.Products(ctx), 8)
	assert.Len(t, svc.RawMaterials(ctx), 8)
	assert.Len(t, svc.Customers(ctx), 4)
	assert.Len(t, svc.Users(ctx), 3)
	assert.Empty(t, svc.Orders(ctx))
	assert.Empty(t, svc.Expenses(ctx))
}

// Lo escrito sobrevive a reabrir el backend desde el mismo archivo.
func TestService_Persistencia(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.AddCustomer(ctx, entity.Customer{ID: "c-99", Name: "Nuevo Cliente"}))

	svc2 := reopen(t, path)
	customers := svc2.Customers(ctx)
	require.Len(t, customers, 5)
	assert.Equal(t, "c-99", customers[4].ID)
}

// AddOrder inserta al frente y descuenta stock; productos inexistentes se
// ignoran sin error.
func TestService_AddOrder(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	o1 := entity.Order{
		ID: "o-1",
		Items: []entity.OrderItem{
			{ProductID: "1", Quantity: 5},
			{ProductID: "no-existe", Quantity: 3},
		},
		CreatedAt: time.Now(),
	}
	require.NoError(t, svc.AddOrder(ctx, o1))
	require.NoError(t, svc.AddOrder(ctx, entity.Order{ID: "o-2", CreatedAt: time.Now()}))

	orders := svc.Orders(ctx)
	require.Len(t, orders, 2)
	assert.Equal(t, "o-2", orders[0].ID)
	assert.Equal(t, "o-1", orders[1].ID)

	products := svc.Products(ctx)
	assert.Equal(t, 495, products[0].Stock)
}

func TestService_UpdateYDelete(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	updated := svc.Products(ctx)[0]
	updated.Price = decimal.NewFromInt(130)
	require.NoError(t, svc.UpdateProduct(ctx, updated))
	assert.True(t, decimal.NewFromInt(130).Equal(svc.Products(ctx)[0].Price))

	// Actualizar o borrar un id inexistente es un no-op silencioso.
	require.NoError(t, svc.UpdateProduct(ctx, entity.Product{ID: "no-existe"}))
	require.NoError(t, svc.DeleteProduct(ctx, "no-existe"))
	assert.Len(t, svc.Products(ctx), 8)

	require.NoError(t, svc.DeleteProduct(ctx, "1"))
	products := svc.Products(ctx)
	assert.Len(t, products, 7)
	assert.Equal(t, "2", products[0].ID)
}

func TestService_Session(t *testing.T) {
	svc, path := newTestService(t)
	ctx := context.Background()

	u, err := svc.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)

	require.NoError(t, svc.SaveSession(ctx, entity.User{ID: "1", Username: "admin", Role: entity.RoleAdmin}))

	// La sesión se restaura desde disco.
	svc2 := reopen(t, path)
	u, err = svc2.Session(ctx)
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, "admin", u.Username)

	require.NoError(t, svc2.ClearSession(ctx))
	u, err = svc2.Session(ctx)
	require.NoError(t, err)
	assert.Nil(t, u)
}

// Un archivo corrupto es un error de arranque, no una pérdida silenciosa.
func TestNewFileBackend_ArchivoCorrupto(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.json")
	require.NoError(t, os.WriteFile(path, []byte("{no es json"), 0o644))

	_, err := storage.NewFileBackend(path)
	assert.Error(t, err)
}
