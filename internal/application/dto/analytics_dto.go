package dto

import "github.com/shopspring/decimal"

// TrendPointResponse punto de la serie diaria de ventas.
type TrendPointResponse struct {
	Date       string          `json:"date"` // YYYY-MM-DD
	Revenue    decimal.Decimal `json:"revenue"`
	OrderCount int             `json:"orderCount"`
}

// TopProductResponse entrada del ranking de productos por ingreso.
type TopProductResponse struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
}

// BucketResponse entrada de una distribución de conteos.
type BucketResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// CustomerMetricsResponse métricas de recompra de clientes.
type CustomerMetricsResponse struct {
	TotalCustomers    int             `json:"totalCustomers"`
	RepeatCustomers   int             `json:"repeatCustomers"`
	RepeatRate        decimal.Decimal `json:"repeatRate"`
	OrdersPerCustomer decimal.Decimal `json:"ordersPerCustomer"`
}

// AnalyticsResponse panel completo de analítica de ventas.
type AnalyticsResponse struct {
	TotalRevenue    decimal.Decimal         `json:"totalRevenue"`
	TotalOrders     int                     `json:"totalOrders"`
	AvgOrderValue   decimal.Decimal         `json:"avgOrderValue"`
	SalesTrend      []TrendPointResponse    `json:"salesTrend"`
	TopProducts     []TopProductResponse    `json:"topProducts"`
	StatusBuckets   []BucketResponse        `json:"statusDistribution"`
	PaymentBuckets  []BucketResponse        `json:"paymentDistribution"`
	CustomerMetrics CustomerMetricsResponse `json:"customerMetrics"`
}

// DashboardResponse resumen del tablero principal.
type DashboardResponse struct {
	TotalRevenue      decimal.Decimal       `json:"totalRevenue"`
	TotalOrders       int                   `json:"totalOrders"`
	AvgOrderValue     decimal.Decimal       `json:"avgOrderValue"`
	TotalCustomers    int                   `json:"totalCustomers"`
	PendingOrders     int                   `json:"pendingOrders"`
	LowStockProducts  []ProductResponse     `json:"lowStockProducts"`
	LowStockMaterials []RawMaterialResponse `json:"lowStockMaterials"`
	RecentOrders      []OrderResponse       `json:"recentOrders"`
}
