package entity

import "github.com/shopspring/decimal"

// RawMaterial representa un insumo de producción (harina, aceite, especias...).
// Comparte con Product el patrón de umbral de stock bajo inclusivo.
type RawMaterial struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Quantity          int             `json:"quantity"`
	Unit              string          `json:"unit"` // kg, liters, pieces...
	CostPerUnit       decimal.Decimal `json:"costPerUnit"`
	Supplier          string          `json:"supplier"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}
