// Package storage implementa el RecordStore sobre un backend llave-valor:
// cada colección se serializa completa como un documento JSON bajo su llave.
// El backend por defecto es un archivo local; opcionalmente PostgreSQL con
// una tabla de colecciones JSONB.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/repository"
	"github.com/khakhra/business-manager/pkg/logger"
)

// Llaves de colección del estado persistido.
const (
	KeyCustomers    = "customers"
	KeyProducts     = "products"
	KeyRawMaterials = "rawMaterials"
	KeyOrders       = "orders"
	KeyExpenses     = "expenses"
	KeySession      = "currentUser"
)

// Backend es el almacén llave-valor subyacente. Read devuelve ok=false si la
// llave no existe.
type Backend interface {
	Read(ctx context.Context, key string) (data []byte, ok bool, err error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Service implementa repository.RecordStore. Las lecturas degradan a seed ante
// cualquier error (se registra un warning); las escrituras retornan el error.
type Service struct {
	backend Backend
	log     *logger.Logger
}

var _ repository.RecordStore = (*Service)(nil)

// New construye el servicio de almacenamiento. Se crea una sola instancia en
// main y se inyecta por referencia; no hay estado global.
func New(backend Backend, log *logger.Logger) *Service {
	return &Service{backend: backend, log: log}
}

// load lee y decodifica una colección; degrada a seed ante llave ausente o error.
func load[T any](s *Service, ctx context.Context, key string, seed func() []T) []T {
	data, ok, err := s.backend.Read(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Str("collection", key).Msg("lectura de colección falló; usando defaults")
		return seed()
	}
	if !ok {
		return seed()
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.log.Warn().Err(err).Str("collection", key).Msg("colección corrupta; usando defaults")
		return seed()
	}
	return records
}

// save serializa y escribe la colección completa (reemplazo atómico: el
// backend garantiza una sola escritura).
func save[T any](s *Service, ctx context.Context, key string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("storage: serializar %s: %w", key, err)
	}
	if err := s.backend.Write(ctx, key, data); err != nil {
		return fmt.Errorf("storage: escribir %s: %w", key, err)
	}
	return nil
}

func appendRecord[T any](s *Service, ctx context.Context, key string, seed func() []T, rec T) error {
	records := load(s, ctx, key, seed)
	return save(s, ctx, key, append(records, rec))
}

// prependRecord inserta al frente: órdenes y gastos se listan por recencia.
func prependRecord[T any](s *Service, ctx context.Context, key string, seed func() []T, rec T) error {
	records := load(s, ctx, key, seed)
	return save(s, ctx, key, append([]T{rec}, records...))
}

// updateRecord reemplaza el registro cuyo id coincide; no-op si no existe.
func updateRecord[T any](s *Service, ctx context.Context, key string, seed func() []T, rec T, id func(T) string) error {
	records := load(s, ctx, key, seed)
	target := id(rec)
	for i := range records {
		if id(records[i]) == target {
			records[i] = rec
			return save(s, ctx, key, records)
		}
	}
	return nil
}

// deleteRecord elimina por id; no-op si no existe.
func deleteRecord[T any](s *Service, ctx context.Context, key string, seed func() []T, target string, id func(T) string) error {
	records := load(s, ctx, key, seed)
	kept := records[:0:0]
	for _, r := range records {
		if id(r) != target {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(records) {
		return nil
	}
	return save(s, ctx, key, kept)
}

// ── Users (seed fijo, no persistido) ─────────────────────────────────────────

func (s *Service) Users(ctx context.Context) []entity.User {
	return SeedUsers()
}

// ── Customers ────────────────────────────────────────────────────────────────

func (s *Service) Customers(ctx context.Context) []entity.Customer {
	return load(s, ctx, KeyCustomers, SeedCustomers)
}

func (s *Service) ReplaceCustomers(ctx context.Context, customers []entity.Customer) error {
	return save(s, ctx, KeyCustomers, customers)
}

func (s *Service) AddCustomer(ctx context.Context, c entity.Customer) error {
	return appendRecord(s, ctx, KeyCustomers, SeedCustomers, c)
}

func (s *Service) UpdateCustomer(ctx context.Context, c entity.Customer) error {
	return updateRecord(s, ctx, KeyCustomers, SeedCustomers, c, func(r entity.Customer) string { return r.ID })
}

func (s *Service) DeleteCustomer(ctx context.Context, id string) error {
	return deleteRecord(s, ctx, KeyCustomers, SeedCustomers, id, func(r entity.Customer) string { return r.ID })
}

// ── Products ─────────────────────────────────────────────────────────────────

func (s *Service) Products(ctx context.Context) []entity.Product {
	return load(s, ctx, KeyProducts, SeedProducts)
}

func (s *Service) ReplaceProducts(ctx context.Context, products []entity.Product) error {
	return save(s, ctx, KeyProducts, products)
}

func (s *Service) AddProduct(ctx context.Context, p entity.Product) error {
	return appendRecord(s, ctx, KeyProducts, SeedProducts, p)
}

func (s *Service) UpdateProduct(ctx context.Context, p entity.Product) error {
	return updateRecord(s, ctx, KeyProducts, SeedProducts, p, func(r entity.Product) string { return r.ID })
}

func (s *Service) DeleteProduct(ctx context.Context, id string) error {
	return deleteRecord(s, ctx, KeyProducts, SeedProducts, id, func(r entity.Product) string { return r.ID })
}

// ── Raw materials ────────────────────────────────────────────────────────────

func (s *Service) RawMaterials(ctx context.Context) []entity.RawMaterial {
	return load(s, ctx, KeyRawMaterials, SeedRawMaterials)
}

func (s *Service) ReplaceRawMaterials(ctx context.Context, materials []entity.RawMaterial) error {
	return save(s, ctx, KeyRawMaterials, materials)
}

func (s *Service) AddRawMaterial(ctx context.Context, m entity.RawMaterial) error {
	return appendRecord(s, ctx, KeyRawMaterials, SeedRawMaterials, m)
}

func (s *Service) UpdateRawMaterial(ctx context.Context, m entity.RawMaterial) error {
	return updateRecord(s, ctx, KeyRawMaterials, SeedRawMaterials, m, func(r entity.RawMaterial) string { return r.ID })
}

func (s *Service) DeleteRawMaterial(ctx context.Context, id string) error {
	return deleteRecord(s, ctx, KeyRawMaterials, SeedRawMaterials, id, func(r entity.RawMaterial) string { return r.ID })
}

// ── Orders ───────────────────────────────────────────────────────────────────

func seedOrders() []entity.Order { return []entity.Order{} }

func (s *Service) Orders(ctx context.Context) []entity.Order {
	return load(s, ctx, KeyOrders, seedOrders)
}

func (s *Service) ReplaceOrders(ctx context.Context, orders []entity.Order) error {
	return save(s, ctx, KeyOrders, orders)
}

// AddOrder inserta la orden al frente y descuenta el stock de los productos
// referenciados. El descuento es al mejor esfuerzo: líneas cuyo producto ya no
// existe no afectan stock y no producen error.
func (s *Service) AddOrder(ctx context.Context, o entity.Order) error {
	if err := prependRecord(s, ctx, KeyOrders, seedOrders, o); err != nil {
		return err
	}
	products := s.Products(ctx)
	changed := false
	for _, it := range o.Items {
		for i := range products {
			if products[i].ID == it.ProductID {
				products[i].Stock -= it.Quantity
				changed = true
			}
		}
	}
	if !changed {
		return nil
	}
	return s.ReplaceProducts(ctx, products)
}

func (s *Service) UpdateOrder(ctx context.Context, o entity.Order) error {
	return updateRecord(s, ctx, KeyOrders, seedOrders, o, func(r entity.Order) string { return r.ID })
}

func (s *Service) DeleteOrder(ctx context.Context, id string) error {
	return deleteRecord(s, ctx, KeyOrders, seedOrders, id, func(r entity.Order) string { return r.ID })
}

// ── Expenses ─────────────────────────────────────────────────────────────────

func seedExpenses() []entity.Expense { return []entity.Expense{} }

func (s *Service) Expenses(ctx context.Context) []entity.Expense {
	return load(s, ctx, KeyExpenses, seedExpenses)
}

func (s *Service) ReplaceExpenses(ctx context.Context, expenses []entity.Expense) error {
	return save(s, ctx, KeyExpenses, expenses)
}

func (s *Service) AddExpense(ctx context.Context, e entity.Expense) error {
	return prependRecord(s, ctx, KeyExpenses, seedExpenses, e)
}

func (s *Service) UpdateExpense(ctx context.Context, e entity.Expense) error {
	return updateRecord(s, ctx, KeyExpenses, seedExpenses, e, func(r entity.Expense) string { return r.ID })
}

func (s *Service) DeleteExpense(ctx context.Context, id string) error {
	return deleteRecord(s, ctx, KeyExpenses, seedExpenses, id, func(r entity.Expense) string { return r.ID })
}

// ── Session ──────────────────────────────────────────────────────────────────

// Session devuelve el usuario de la sesión activa, o nil si no hay sesión.
func (s *Service) Session(ctx context.Context) (*entity.User, error) {
	data, ok, err := s.backend.Read(ctx, KeySession)
	if err != nil {
		return nil, fmt.Errorf("storage: leer sesión: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var u entity.User
	if err := json.Unmarshal(data, &u); err != nil {
		return nil, fmt.Errorf("storage: sesión corrupta: %w", err)
	}
	return &u, nil
}

func (s *Service) SaveSession(ctx context.Context, u entity.User) error {
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("storage: serializar sesión: %w", err)
	}
	return s.backend.Write(ctx, KeySession, data)
}

func (s *Service) ClearSession(ctx context.Context) error {
	return s.backend.Delete(ctx, KeySession)
}
