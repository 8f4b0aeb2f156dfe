package dto

import "github.com/shopspring/decimal"

// CreateRawMaterialRequest entrada para registrar un insumo.
type CreateRawMaterialRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Quantity          int             `json:"quantity"`
	Unit              string          `json:"unit"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	Supplier          string          `json:"supplier"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// UpdateRawMaterialRequest actualización de registro completo.
type UpdateRawMaterialRequest struct {
	Name              string          `json:"name" validate:"required,min=1,max=200"`
	Quantity          int             `json:"quantity"`
	Unit              string          `json:"unit"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	Supplier          string          `json:"supplier"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// RawMaterialResponse salida de un insumo con estado de stock derivado.
type RawMaterialResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	Unit              string          `json:"unit"`
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	Supplier          string          `json:"supplier"`
	LowStockThreshold int             `json:"lowStockThreshold"`
	StockStatus       string          `json:"stockStatus"`
}
