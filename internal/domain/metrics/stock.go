package metrics

import "github.com/khakhra/business-manager/internal/domain/entity"

// StockStatus clasifica el nivel de existencias de un ítem.
type StockStatus string

const (
	StockLow StockStatus = "LOW"
	StockOK  StockStatus = "OK"
)

// EvaluateStock clasifica quantity contra su umbral. El umbral es inclusivo:
// quantity == threshold ya es LOW.
func EvaluateStock(quantity, threshold int) StockStatus {
	if quantity <= threshold {
		return StockLow
	}
	return StockOK
}

// ProductStockStatus evalúa el stock de un producto terminado.
func ProductStockStatus(p entity.Product) StockStatus {
	return EvaluateStock(p.Stock, p.LowStockThreshold)
}

// MaterialStockStatus evalúa la existencia de una materia prima.
func MaterialStockStatus(m entity.RawMaterial) StockStatus {
	return EvaluateStock(m.Quantity, m.LowStockThreshold)
}

// LowStockProducts devuelve los productos en estado LOW, en el orden recibido.
func LowStockProducts(products []entity.Product) []entity.Product {
	var low []entity.Product
	for _, p := range products {
		if ProductStockStatus(p) == StockLow {
			low = append(low, p)
		}
	}
	return low
}

// LowStockMaterials devuelve las materias primas en estado LOW, en el orden recibido.
func LowStockMaterials(materials []entity.RawMaterial) []entity.RawMaterial {
	var low []entity.RawMaterial
	for _, m := range materials {
		if MaterialStockStatus(m) == StockLow {
			low = append(low, m)
		}
	}
	return low
}
