package entity

import "github.com/shopspring/decimal"

// Product representa una variedad de khakhra del catálogo.
// Price y Cost son por unidad de venta (pack); Stock se descuenta al crear
// órdenes. Invariante: Price y Cost no negativos.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Category          string          `json:"category"` // Regular, Flavored, Premium
	Price             decimal.Decimal `json:"price"`    // precio de venta por unidad
	Cost              decimal.Decimal `json:"cost"`     // costo de producción por unidad
	Stock             int             `json:"stock"`
	Unit              string          `json:"unit"` // etiqueta: "pack", "box", ...
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// Margin devuelve (price - cost) / price * 100, o cero si el precio es cero.
func (p Product) Margin() decimal.Decimal {
	if p.Price.IsZero() {
		return decimal.Zero
	}
	return p.Price.Sub(p.Cost).Div(p.Price).Mul(decimal.NewFromInt(100))
}
