package metrics

import (
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderTotals es el desglose financiero de una orden.
type OrderTotals struct {
	Subtotal  decimal.Decimal
	GSTAmount decimal.Decimal
	Total     decimal.Decimal
}

// CalculateOrderTotals calcula subtotal, GST y total de una lista de líneas.
//
//	subtotal  = Σ (qty × price)
//	gstAmount = subtotal × gstRate / 100
//	total     = subtotal + gstAmount
//
// Sin redondeo interno: el redondeo a 2 decimales es responsabilidad de la
// capa de presentación, para no acumular error entre líneas.
func CalculateOrderTotals(items []entity.OrderItem, gstRate decimal.Decimal) OrderTotals {
	subtotal := decimal.Zero
	for _, it := range items {
		subtotal = subtotal.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	gstAmount := subtotal.Mul(gstRate).Div(hundred)
	return OrderTotals{
		Subtotal:  subtotal,
		GSTAmount: gstAmount,
		Total:     subtotal.Add(gstAmount),
	}
}

// OrderCOGS devuelve el costo de mercancía vendida de una orden: Σ (cost × qty).
func OrderCOGS(o entity.Order) decimal.Decimal {
	cogs := decimal.Zero
	for _, it := range o.Items {
		cogs = cogs.Add(it.Cost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return cogs
}
