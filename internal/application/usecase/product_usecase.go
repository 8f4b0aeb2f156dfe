package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/domain"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/metrics"
	"github.com/khakhra/business-manager/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para el catálogo de productos.
type ProductUseCase struct {
	store repository.RecordStore
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(store repository.RecordStore) *ProductUseCase {
	return &ProductUseCase{store: store}
}

// List devuelve el catálogo completo con estado de stock derivado.
func (uc *ProductUseCase) List(ctx context.Context) []dto.ProductResponse {
	products := uc.store.Products(ctx)
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

// LowStock devuelve solo los productos en o bajo su umbral.
func (uc *ProductUseCase) LowStock(ctx context.Context) []dto.ProductResponse {
	low := metrics.LowStockProducts(uc.store.Products(ctx))
	out := make([]dto.ProductResponse, 0, len(low))
	for _, p := range low {
		out = append(out, toProductResponse(p))
	}
	return out
}

// GetByID obtiene un producto por ID. Devuelve (nil, nil) si no existe.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	for _, p := range uc.store.Products(ctx) {
		if p.ID == id {
			resp := toProductResponse(p)
			return &resp, nil
		}
	}
	return nil, nil
}

// Create crea un producto nuevo. Precio y costo no pueden ser negativos.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Cost.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	product := entity.Product{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Category:          in.Category,
		Price:             in.Price,
		Cost:              in.Cost,
		Stock:             in.Stock,
		Unit:              in.Unit,
		LowStockThreshold: in.LowStockThreshold,
	}
	if err := uc.store.AddProduct(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Update reemplaza el registro completo. Devuelve (nil, nil) si no existe.
// Las órdenes ya creadas no cambian: llevan snapshot de precio y costo.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if in.Name == "" || in.Price.IsNegative() || in.Cost.IsNegative() || in.Stock < 0 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	product := entity.Product{
		ID:                id,
		Name:              in.Name,
		Category:          in.Category,
		Price:             in.Price,
		Cost:              in.Cost,
		Stock:             in.Stock,
		Unit:              in.Unit,
		LowStockThreshold: in.LowStockThreshold,
	}
	if err := uc.store.UpdateProduct(ctx, product); err != nil {
		return nil, err
	}
	resp := toProductResponse(product)
	return &resp, nil
}

// Delete borra el producto. Es no-op si el id no existe.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteProduct(ctx, id)
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:                p.ID,
		Name:              p.Name,
		Category:          p.Category,
		Price:             p.Price.Round(2),
		Cost:              p.Cost.Round(2),
		Stock:             p.Stock,
		Unit:              p.Unit,
		LowStockThreshold: p.LowStockThreshold,
		StockStatus:       string(metrics.ProductStockStatus(p)),
		Margin:            p.Margin().Round(2),
	}
}
