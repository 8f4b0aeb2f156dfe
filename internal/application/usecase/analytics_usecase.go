package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
	"github.com/khakhra/business-manager/internal/domain/repository"
	"github.com/khakhra/business-manager/internal/infrastructure/cache"
	"github.com/khakhra/business-manager/pkg/logger"
)

// DefaultTrendDays es la ventana por defecto de la serie de ventas.
const DefaultTrendDays = 7

// AnalyticsUseCase arma el panel de analítica y el resumen del tablero.
// Las respuestas de analítica pasan por un caché de corta vida: el panel se
// consulta mucho más de lo que cambian los datos. Un fallo del caché nunca
// falla la petición; solo se recalcula.
type AnalyticsUseCase struct {
	store repository.RecordStore
	cache cache.SummaryCache
	ttl   time.Duration
	log   *logger.Logger
	now   func() time.Time
}

// NewAnalyticsUseCase construye el caso de uso.
func NewAnalyticsUseCase(store repository.RecordStore, c cache.SummaryCache, ttl time.Duration, log *logger.Logger) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		store: store,
		cache: c,
		ttl:   ttl,
		log:   log.Component("analytics"),
		now:   time.Now,
	}
}

// Analytics devuelve el panel completo: serie diaria, ranking de productos,
// distribuciones y métricas de clientes. days acota la serie; fuera de rango
// cae a DefaultTrendDays.
func (uc *AnalyticsUseCase) Analytics(ctx context.Context, days int) (*dto.AnalyticsResponse, error) {
	if days <= 0 || days > 365 {
		days = DefaultTrendDays
	}
	key := fmt.Sprintf("analytics:%d", days)

	if data, ok, err := uc.cache.Get(ctx, key); err != nil {
		uc.log.Warn().Err(err).Str("key", key).Msg("lectura de caché falló, recalculando")
	} else if ok {
		var resp dto.AnalyticsResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		uc.log.Warn().Str("key", key).Msg("entrada de caché corrupta, recalculando")
	}

	orders := uc.store.Orders(ctx)
	summary := metrics.SummarizeSales(orders)

	resp := &dto.AnalyticsResponse{
		TotalRevenue:    summary.TotalRevenue.Round(2),
		TotalOrders:     summary.TotalOrders,
		AvgOrderValue:   summary.AvgOrderValue.Round(2),
		SalesTrend:      toTrendResponse(metrics.SalesTrend(orders, days, uc.now())),
		TopProducts:     toTopProductsResponse(metrics.TopProducts(orders, metrics.DefaultTopProducts)),
		StatusBuckets:   toBucketsResponse(metrics.StatusDistribution(orders)),
		PaymentBuckets:  toBucketsResponse(metrics.PaymentDistribution(orders)),
		CustomerMetrics: toCustomerMetricsResponse(metrics.CustomerRepeatRate(orders)),
	}

	if data, err := json.Marshal(resp); err == nil {
		if err := uc.cache.Set(ctx, key, data, uc.ttl); err != nil {
			uc.log.Warn().Err(err).Str("key", key).Msg("escritura de caché falló")
		}
	}
	return resp, nil
}

// Dashboard arma el resumen del tablero principal: agregados globales,
// alertas de stock bajo y las órdenes más recientes.
func (uc *AnalyticsUseCase) Dashboard(ctx context.Context) *dto.DashboardResponse {
	orders := uc.store.Orders(ctx)
	summary := metrics.SummarizeSales(orders)

	pending := 0
	for _, o := range orders {
		if o.Status == entity.OrderStatusPending {
			pending++
		}
	}

	lowProducts := metrics.LowStockProducts(uc.store.Products(ctx))
	lowProductsResp := make([]dto.ProductResponse, 0, len(lowProducts))
	for _, p := range lowProducts {
		lowProductsResp = append(lowProductsResp, toProductResponse(p))
	}

	lowMaterials := metrics.LowStockMaterials(uc.store.RawMaterials(ctx))
	lowMaterialsResp := make([]dto.RawMaterialResponse, 0, len(lowMaterials))
	for _, m := range lowMaterials {
		lowMaterialsResp = append(lowMaterialsResp, toRawMaterialResponse(m))
	}

	// Las órdenes ya vienen ordenadas por recencia: se insertan al frente.
	recent := make([]dto.OrderResponse, 0, 5)
	for i, o := range orders {
		if i == 5 {
			break
		}
		recent = append(recent, toOrderResponse(o))
	}

	return &dto.DashboardResponse{
		TotalRevenue:      summary.TotalRevenue.Round(2),
		TotalOrders:       summary.TotalOrders,
		AvgOrderValue:     summary.AvgOrderValue.Round(2),
		TotalCustomers:    len(uc.store.Customers(ctx)),
		PendingOrders:     pending,
		LowStockProducts:  lowProductsResp,
		LowStockMaterials: lowMaterialsResp,
		RecentOrders:      recent,
	}
}

func toTrendResponse(points []metrics.TrendPoint) []dto.TrendPointResponse {
	out := make([]dto.TrendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.TrendPointResponse{
			Date:       p.Date.Format("2006-01-02"),
			Revenue:    p.Revenue.Round(2),
			OrderCount: p.OrderCount,
		})
	}
	return out
}

func toTopProductsResponse(top []metrics.ProductSales) []dto.TopProductResponse {
	out := make([]dto.TopProductResponse, 0, len(top))
	for _, t := range top {
		out = append(out, dto.TopProductResponse{
			ProductID: t.ProductID,
			Name:      t.Name,
			Quantity:  t.Quantity,
			Revenue:   t.Revenue.Round(2),
		})
	}
	return out
}

func toBucketsResponse(buckets []metrics.Bucket) []dto.BucketResponse {
	out := make([]dto.BucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, dto.BucketResponse{Label: b.Label, Count: b.Count})
	}
	return out
}

func toCustomerMetricsResponse(m metrics.CustomerMetrics) dto.CustomerMetricsResponse {
	return dto.CustomerMetricsResponse{
		TotalCustomers:    m.TotalCustomers,
		RepeatCustomers:   m.RepeatCustomers,
		RepeatRate:        m.RepeatRate.Round(2),
		OrdersPerCustomer: m.OrdersPerCustomer.Round(2),
	}
}
