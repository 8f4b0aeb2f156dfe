package metrics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
)

// El umbral es inclusivo: stock igual al umbral ya es LOW.
func TestEvaluateStock_UmbralInclusivo(t *testing.T) {
	assert.Equal(t, metrics.StockLow, metrics.EvaluateStock(100, 100))
	assert.Equal(t, metrics.StockOK, metrics.EvaluateStock(101, 100))
	assert.Equal(t, metrics.StockLow, metrics.EvaluateStock(0, 100))
	assert.Equal(t, metrics.StockLow, metrics.EvaluateStock(0, 0))
}

func TestLowStockProducts(t *testing.T) {
	products := []entity.Product{
		{ID: "1", Name: "Plain", Stock: 100, LowStockThreshold: 100},
		{ID: "2", Name: "Methi", Stock: 400, LowStockThreshold: 100},
		{ID: "3", Name: "Jeera", Stock: 50, LowStockThreshold: 100},
	}

	low := metrics.LowStockProducts(products)
	require.Len(t, low, 2)
	assert.Equal(t, "1", low[0].ID)
	assert.Equal(t, "3", low[1].ID)
}

func TestLowStockMaterials(t *testing.T) {
	materials := []entity.RawMaterial{
		{ID: "1", Name: "Harina", Quantity: 500, LowStockThreshold: 100},
		{ID: "2", Name: "Sal", Quantity: 10, LowStockThreshold: 10},
	}

	low := metrics.LowStockMaterials(materials)
	require.Len(t, low, 1)
	assert.Equal(t, "2", low[0].ID)
}
