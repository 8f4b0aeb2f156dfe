package metrics

import (
	"time"

	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TrendPoint es un día de la serie de ventas.
type TrendPoint struct {
	Date       time.Time       // inicio del día, hora local
	Revenue    decimal.Decimal // Σ total de órdenes no canceladas del día
	OrderCount int
}

// SalesTrend produce la serie de los últimos days días calendario (el más
// antiguo primero, el día de now al final). Cada punto agrega las órdenes no
// canceladas cuyo createdAt cae dentro de ese día en hora local. La serie
// siempre tiene exactamente days puntos; los días sin ventas van en cero.
func SalesTrend(orders []entity.Order, days int, now time.Time) []TrendPoint {
	if days <= 0 {
		return []TrendPoint{}
	}
	points := make([]TrendPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := startOfDay(now.AddDate(0, 0, -i))
		r := DateRange{Start: day, End: endOfDay(day)}

		p := TrendPoint{Date: day, Revenue: decimal.Zero}
		for _, o := range orders {
			if o.IsCancelled() || !r.Contains(o.CreatedAt) {
				continue
			}
			p.Revenue = p.Revenue.Add(o.Total)
			p.OrderCount++
		}
		points = append(points, p)
	}
	return points
}
