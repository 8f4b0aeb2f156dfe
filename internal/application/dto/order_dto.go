package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de orden: referencia al catálogo por id. Nombre,
// precio y costo se copian del producto al crear la orden.
type OrderItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// CreateOrderRequest entrada para crear una orden. GSTRate en cero aplica
// la tasa GST por defecto del negocio.
type CreateOrderRequest struct {
	CustomerID    string             `json:"customerId" validate:"required"`
	Items         []OrderItemRequest `json:"items" validate:"required,min=1"`
	GSTRate       decimal.Decimal    `json:"gstRate"`
	PaymentMethod string             `json:"paymentMethod" validate:"required,oneof=cash card upi bank_transfer"`
	PaymentStatus string             `json:"paymentStatus" validate:"omitempty,oneof=pending paid"`
	Notes         string             `json:"notes"`
}

// UpdateOrderStatusRequest cambio de estado de una orden.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing shipped delivered cancelled"`
}

// UpdateOrderPaymentRequest cambio de estado de pago.
type UpdateOrderPaymentRequest struct {
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=pending paid"`
}

// OrderItemResponse línea de orden con el snapshot del producto.
type OrderItemResponse struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
}

// OrderResponse salida de una orden con snapshot del cliente y totales.
type OrderResponse struct {
	ID              string              `json:"id"`
	CustomerID      string              `json:"customerId"`
	CustomerName    string              `json:"customerName"`
	CustomerEmail   string              `json:"customerEmail"`
	CustomerPhone   string              `json:"customerPhone"`
	CustomerAddress string              `json:"customerAddress"`
	CustomerGST     string              `json:"customerGst,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	Subtotal        decimal.Decimal     `json:"subtotal"`
	GSTAmount       decimal.Decimal     `json:"gstAmount"`
	GSTRate         decimal.Decimal     `json:"gstRate"`
	Total           decimal.Decimal     `json:"total"`
	Status          string              `json:"status"`
	PaymentMethod   string              `json:"paymentMethod"`
	PaymentStatus   string              `json:"paymentStatus"`
	CreatedAt       time.Time           `json:"createdAt"`
	UpdatedAt       time.Time           `json:"updatedAt"`
	Notes           string              `json:"notes,omitempty"`
}
