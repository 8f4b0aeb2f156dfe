package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados posibles de una orden.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// OrderStatuses lista los estados en su orden canónico de ciclo de vida.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

// Estados de pago.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
)

// OrderItem es una línea de orden: snapshot del producto al momento de la
// venta. Price y Cost se copian del producto a propósito, para que cambios
// posteriores de precio no alteren órdenes históricas.
type OrderItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"` // precio de venta unitario al momento de la orden
	Cost        decimal.Decimal `json:"cost"`  // costo unitario al momento de la orden
}

// Order representa una orden de venta con snapshot desnormalizado del cliente.
// Invariantes: Subtotal = Σ(qty × price); Total = Subtotal × (1 + GSTRate/100).
// Las órdenes canceladas quedan almacenadas pero se excluyen de ingresos y COGS.
type Order struct {
	ID              string          `json:"id"`
	CustomerID      string          `json:"customerId"`
	CustomerName    string          `json:"customerName"`
	CustomerEmail   string          `json:"customerEmail"`
	CustomerPhone   string          `json:"customerPhone"`
	CustomerAddress string          `json:"customerAddress"`
	CustomerGST     string          `json:"customerGst,omitempty"`
	Items           []OrderItem     `json:"items"`
	Subtotal        decimal.Decimal `json:"subtotal"`
	GSTAmount       decimal.Decimal `json:"gstAmount"`
	GSTRate         decimal.Decimal `json:"gstRate"` // porcentaje, ej. 18
	Total           decimal.Decimal `json:"total"`
	Status          string          `json:"status"`
	PaymentMethod   string          `json:"paymentMethod"` // cash, card, upi, bank_transfer
	PaymentStatus   string          `json:"paymentStatus"` // pending, paid
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Notes           string          `json:"notes,omitempty"`
}

// IsCancelled indica si la orden debe excluirse de agregaciones financieras.
func (o Order) IsCancelled() bool {
	return o.Status == OrderStatusCancelled
}

// ValidStatus indica si s es uno de los estados conocidos.
func ValidStatus(s string) bool {
	for _, st := range OrderStatuses {
		if st == s {
			return true
		}
	}
	return false
}
