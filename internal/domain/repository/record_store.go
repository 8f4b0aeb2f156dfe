package repository

import (
	"context"

	"github.com/khakhra/business-manager/internal/domain/entity"
)

// RecordStore es el almacén llave-valor de colecciones tipadas. Cada colección
// es una secuencia ordenada de registros serializables a JSON.
//
// Contratos:
//   - Las lecturas nunca fallan: si la colección no existe o no puede leerse,
//     degradan a los valores seed (órdenes y gastos degradan a vacío).
//   - ReplaceAll es atómico: una sola escritura, sin estados parciales.
//   - Update y Delete son no-op si el id no existe.
//   - AddOrder y AddExpense insertan al frente (las listas se muestran por
//     recencia); el resto agrega al final.
//   - AddOrder además descuenta el stock de los productos referenciados por
//     cada línea, al mejor esfuerzo: si un producto ya no existe, esa línea
//     simplemente no afecta stock.
//   - Los errores de escritura SÍ se retornan (decisión documentada en
//     DESIGN.md; el original los tragaba en silencio).
type RecordStore interface {
	// Users devuelve los usuarios del sistema (seed fijo, no persistido).
	Users(ctx context.Context) []entity.User

	Customers(ctx context.Context) []entity.Customer
	ReplaceCustomers(ctx context.Context, customers []entity.Customer) error
	AddCustomer(ctx context.Context, c entity.Customer) error
	UpdateCustomer(ctx context.Context, c entity.Customer) error
	DeleteCustomer(ctx context.Context, id string) error

	Products(ctx context.Context) []entity.Product
	ReplaceProducts(ctx context.Context, products []entity.Product) error
	AddProduct(ctx context.Context, p entity.Product) error
	UpdateProduct(ctx context.Context, p entity.Product) error
	DeleteProduct(ctx context.Context, id string) error

	RawMaterials(ctx context.Context) []entity.RawMaterial
	ReplaceRawMaterials(ctx context.Context, materials []entity.RawMaterial) error
	AddRawMaterial(ctx context.Context, m entity.RawMaterial) error
	UpdateRawMaterial(ctx context.Context, m entity.RawMaterial) error
	DeleteRawMaterial(ctx context.Context, id string) error

	Orders(ctx context.Context) []entity.Order
	ReplaceOrders(ctx context.Context, orders []entity.Order) error
	AddOrder(ctx context.Context, o entity.Order) error
	UpdateOrder(ctx context.Context, o entity.Order) error
	DeleteOrder(ctx context.Context, id string) error

	Expenses(ctx context.Context) []entity.Expense
	ReplaceExpenses(ctx context.Context, expenses []entity.Expense) error
	AddExpense(ctx context.Context, e entity.Expense) error
	UpdateExpense(ctx context.Context, e entity.Expense) error
	DeleteExpense(ctx context.Context, id string) error

	// Session es el marcador de sesión: el usuario actual persistido.
	// Ausente ⇒ (nil, nil).
	Session(ctx context.Context) (*entity.User, error)
	SaveSession(ctx context.Context, u entity.User) error
	ClearSession(ctx context.Context) error
}
