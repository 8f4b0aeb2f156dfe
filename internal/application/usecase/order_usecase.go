package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/domain"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
	"github.com/khakhra/business-manager/internal/domain/repository"
)

// Métodos de pago aceptados.
var paymentMethods = map[string]bool{
	"cash":          true,
	"card":          true,
	"upi":           true,
	"bank_transfer": true,
}

// OrderUseCase casos de uso de órdenes de venta. Al crear una orden se
// congela un snapshot del cliente y de cada producto: ediciones posteriores
// del catálogo o del cliente no alteran órdenes históricas.
type OrderUseCase struct {
	store          repository.RecordStore
	defaultGSTRate decimal.Decimal
}

// NewOrderUseCase construye el caso de uso. defaultGSTRate es el porcentaje
// aplicado cuando la orden no trae tasa propia.
func NewOrderUseCase(store repository.RecordStore, defaultGSTRate int) *OrderUseCase {
	return &OrderUseCase{
		store:          store,
		defaultGSTRate: decimal.NewFromInt(int64(defaultGSTRate)),
	}
}

// List devuelve todas las órdenes, la más reciente primero.
func (uc *OrderUseCase) List(ctx context.Context) []dto.OrderResponse {
	orders := uc.store.Orders(ctx)
	out := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	return out
}

// GetByID obtiene una orden por ID. Devuelve (nil, nil) si no existe.
func (uc *OrderUseCase) GetByID(ctx context.Context, id string) (*dto.OrderResponse, error) {
	o, ok := uc.findOrder(ctx, id)
	if !ok {
		return nil, nil
	}
	resp := toOrderResponse(o)
	return &resp, nil
}

// Create crea una orden: resuelve cliente y productos del catálogo, congela
// sus snapshots, calcula totales con GST y descuenta stock. La orden nace
// en estado pending.
func (uc *OrderUseCase) Create(ctx context.Context, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if len(in.Items) == 0 || !paymentMethods[in.PaymentMethod] {
		return nil, domain.ErrInvalidInput
	}
	if in.PaymentStatus != "" && in.PaymentStatus != entity.PaymentStatusPending && in.PaymentStatus != entity.PaymentStatusPaid {
		return nil, domain.ErrInvalidInput
	}
	if in.GSTRate.IsNegative() {
		return nil, domain.ErrInvalidInput
	}

	customer, ok := uc.findCustomer(ctx, in.CustomerID)
	if !ok {
		return nil, domain.ErrNotFound
	}

	catalog := make(map[string]entity.Product)
	for _, p := range uc.store.Products(ctx) {
		catalog[p.ID] = p
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
		product, ok := catalog[it.ProductID]
		if !ok {
			return nil, domain.ErrNotFound
		}
		items = append(items, entity.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    it.Quantity,
			Price:       product.Price,
			Cost:        product.Cost,
		})
	}

	gstRate := in.GSTRate
	if gstRate.IsZero() {
		gstRate = uc.defaultGSTRate
	}
	totals := metrics.CalculateOrderTotals(items, gstRate)

	paymentStatus := in.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = entity.PaymentStatusPending
	}

	now := time.Now()
	order := entity.Order{
		ID:              uuid.New().String(),
		CustomerID:      customer.ID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		CustomerGST:     customer.GSTNumber,
		Items:           items,
		Subtotal:        totals.Subtotal,
		GSTAmount:       totals.GSTAmount,
		GSTRate:         gstRate,
		Total:           totals.Total,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   paymentStatus,
		CreatedAt:       now,
		UpdatedAt:       now,
		Notes:           in.Notes,
	}
	if err := uc.store.AddOrder(ctx, order); err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// UpdateStatus cambia el estado de la orden. Cancelar una orden no repone
// stock: la orden cancelada queda almacenada y solo se excluye de las
// agregaciones financieras. Devuelve (nil, nil) si el id no existe.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, id, status string) (*dto.OrderResponse, error) {
	if !entity.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}
	order, ok := uc.findOrder(ctx, id)
	if !ok {
		return nil, nil
	}
	order.Status = status
	order.UpdatedAt = time.Now()
	if err := uc.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// UpdatePayment cambia el estado de pago. Devuelve (nil, nil) si no existe.
func (uc *OrderUseCase) UpdatePayment(ctx context.Context, id, paymentStatus string) (*dto.OrderResponse, error) {
	if paymentStatus != entity.PaymentStatusPending && paymentStatus != entity.PaymentStatusPaid {
		return nil, domain.ErrInvalidInput
	}
	order, ok := uc.findOrder(ctx, id)
	if !ok {
		return nil, nil
	}
	order.PaymentStatus = paymentStatus
	order.UpdatedAt = time.Now()
	if err := uc.store.UpdateOrder(ctx, order); err != nil {
		return nil, err
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

// Delete borra la orden. Es no-op si el id no existe.
func (uc *OrderUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteOrder(ctx, id)
}

func (uc *OrderUseCase) findOrder(ctx context.Context, id string) (entity.Order, bool) {
	for _, o := range uc.store.Orders(ctx) {
		if o.ID == id {
			return o, true
		}
	}
	return entity.Order{}, false
}

func (uc *OrderUseCase) findCustomer(ctx context.Context, id string) (entity.Customer, bool) {
	for _, c := range uc.store.Customers(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return entity.Customer{}, false
}

// toOrderResponse redondea montos a 2 decimales solo en la frontera de
// presentación; los valores almacenados no se redondean.
func toOrderResponse(o entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price.Round(2),
			Cost:        it.Cost.Round(2),
		})
	}
	return dto.OrderResponse{
		ID:              o.ID,
		CustomerID:      o.CustomerID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		CustomerPhone:   o.CustomerPhone,
		CustomerAddress: o.CustomerAddress,
		CustomerGST:     o.CustomerGST,
		Items:           items,
		Subtotal:        o.Subtotal.Round(2),
		GSTAmount:       o.GSTAmount.Round(2),
		GSTRate:         o.GSTRate,
		Total:           o.Total.Round(2),
		Status:          o.Status,
		PaymentMethod:   o.PaymentMethod,
		PaymentStatus:   o.PaymentStatus,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
		Notes:           o.Notes,
	}
}
