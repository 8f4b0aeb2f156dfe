package metrics

import (
	"sort"
	"strings"

	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DefaultTopProducts es el tamaño por defecto del ranking de productos.
const DefaultTopProducts = 8

var titleCaser = cases.Title(language.English)

// ProductSales acumula ventas por producto.
type ProductSales struct {
	ProductID string
	Name      string
	Quantity  int             // unidades vendidas
	Revenue   decimal.Decimal // Σ qty × precio de venta (no costo)
}

// TopProducts acumula cantidad e ingresos por producto sobre las líneas de
// órdenes no canceladas y devuelve los limit con mayor ingreso, en orden
// descendente. Los empates conservan el orden de primera aparición
// (ordenamiento estable sobre el orden de acumulación).
func TopProducts(orders []entity.Order, limit int) []ProductSales {
	if limit <= 0 {
		limit = DefaultTopProducts
	}
	index := make(map[string]int)
	acc := make([]ProductSales, 0)

	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		for _, it := range o.Items {
			i, ok := index[it.ProductID]
			if !ok {
				i = len(acc)
				index[it.ProductID] = i
				acc = append(acc, ProductSales{
					ProductID: it.ProductID,
					Name:      it.ProductName,
					Revenue:   decimal.Zero,
				})
			}
			acc[i].Quantity += it.Quantity
			acc[i].Revenue = acc[i].Revenue.Add(it.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
		}
	}

	sort.SliceStable(acc, func(a, b int) bool {
		return acc[a].Revenue.GreaterThan(acc[b].Revenue)
	})
	if len(acc) > limit {
		acc = acc[:limit]
	}
	return acc
}

// Bucket es una entrada de una distribución de conteos.
type Bucket struct {
	Label string
	Count int
}

// StatusDistribution cuenta órdenes por estado sobre TODAS las órdenes,
// canceladas incluidas: la distribución de estados no se filtra por
// rentabilidad. El resultado sigue el orden canónico de estados y omite los
// estados sin órdenes. Las etiquetas van capitalizadas ("Pending").
func StatusDistribution(orders []entity.Order) []Bucket {
	counts := make(map[string]int, len(entity.OrderStatuses))
	for _, o := range orders {
		counts[o.Status]++
	}
	out := make([]Bucket, 0, len(entity.OrderStatuses))
	for _, st := range entity.OrderStatuses {
		if counts[st] == 0 {
			continue
		}
		out = append(out, Bucket{Label: titleCaser.String(st), Count: counts[st]})
	}
	return out
}

// PaymentDistribution cuenta órdenes no canceladas por método de pago. La
// etiqueta se normaliza reemplazando guiones bajos por espacios y pasando a
// mayúsculas ("bank_transfer" → "BANK TRANSFER"). El orden de los buckets es
// el de primera aparición.
func PaymentDistribution(orders []entity.Order) []Bucket {
	index := make(map[string]int)
	out := make([]Bucket, 0)
	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		label := strings.ToUpper(strings.ReplaceAll(o.PaymentMethod, "_", " "))
		i, ok := index[label]
		if !ok {
			i = len(out)
			index[label] = i
			out = append(out, Bucket{Label: label})
		}
		out[i].Count++
	}
	return out
}

// CustomerMetrics son las métricas de recompra de clientes.
type CustomerMetrics struct {
	TotalCustomers    int             // clientes distintos con al menos una orden no cancelada
	RepeatCustomers   int             // clientes con más de una orden no cancelada
	RepeatRate        decimal.Decimal // RepeatCustomers / TotalCustomers × 100 (0 si no hay clientes)
	OrdersPerCustomer decimal.Decimal
}

// CustomerRepeatRate calcula las métricas de recompra sobre órdenes no canceladas.
func CustomerRepeatRate(orders []entity.Order) CustomerMetrics {
	counts := make(map[string]int)
	totalOrders := 0
	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		counts[o.CustomerID]++
		totalOrders++
	}
	m := CustomerMetrics{
		TotalCustomers:    len(counts),
		RepeatRate:        decimal.Zero,
		OrdersPerCustomer: decimal.Zero,
	}
	for _, n := range counts {
		if n > 1 {
			m.RepeatCustomers++
		}
	}
	if m.TotalCustomers > 0 {
		m.RepeatRate = percent(decimal.NewFromInt(int64(m.RepeatCustomers)), decimal.NewFromInt(int64(m.TotalCustomers)))
		m.OrdersPerCustomer = decimal.NewFromInt(int64(totalOrders)).Div(decimal.NewFromInt(int64(m.TotalCustomers)))
	}
	return m
}

// SalesSummary son los agregados globales de ventas no canceladas.
type SalesSummary struct {
	TotalRevenue  decimal.Decimal
	TotalOrders   int
	AvgOrderValue decimal.Decimal // 0 si no hay órdenes
}

// SummarizeSales agrega el total histórico de ventas no canceladas.
func SummarizeSales(orders []entity.Order) SalesSummary {
	s := SalesSummary{TotalRevenue: decimal.Zero, AvgOrderValue: decimal.Zero}
	for _, o := range orders {
		if o.IsCancelled() {
			continue
		}
		s.TotalRevenue = s.TotalRevenue.Add(o.Total)
		s.TotalOrders++
	}
	if s.TotalOrders > 0 {
		s.AvgOrderValue = s.TotalRevenue.Div(decimal.NewFromInt(int64(s.TotalOrders)))
	}
	return s
}
