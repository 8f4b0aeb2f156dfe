package dto

import "github.com/shopspring/decimal"

// CreateProductRequest entrada para crear una variedad de producto.
type CreateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Stock             int             `json:"stock"`
	Unit              string          `json:"unit"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// UpdateProductRequest actualización de registro completo.
type UpdateProductRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Stock             int             `json:"stock"`
	Unit              string          `json:"unit"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// ProductResponse salida de un producto, con el estado de stock derivado y
// el margen calculado al momento de la respuesta.
type ProductResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"`
	Price             decimal.Decimal `json:"price"`
	Cost              decimal.Decimal `json:"cost"`
	Stock             int             `json:"stock"`
	Unit              string          `json:"unit"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	StockStatus       string          `json:"stockStatus"`
	Margin            decimal.Decimal `json:"margin"`
}
