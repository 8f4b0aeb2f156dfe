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

// RawMaterialUseCase casos de uso CRUD para insumos de producción.
type RawMaterialUseCase struct {
	store repository.RecordStore
}

// NewRawMaterialUseCase construye el caso de uso.
func NewRawMaterialUseCase(store repository.RecordStore) *RawMaterialUseCase {
	return &RawMaterialUseCase{store: store}
}

// List devuelve todos los insumos con estado de stock derivado.
func (uc *RawMaterialUseCase) List(ctx context.Context) []dto.RawMaterialResponse {
	materials := uc.store.RawMaterials(ctx)
	out := make([]dto.RawMaterialResponse, 0, len(materials))
	for _, m := range materials {
		out = append(out, toRawMaterialResponse(m))
	}
	return out
}

// LowStock devuelve solo los insumos en o bajo su umbral.
func (uc *RawMaterialUseCase) LowStock(ctx context.Context) []dto.RawMaterialResponse {
	low := metrics.LowStockMaterials(uc.store.RawMaterials(ctx))
	out := make([]dto.RawMaterialResponse, 0, len(low))
	for _, m := range low {
		out = append(out, toRawMaterialResponse(m))
	}
	return out
}

// GetByID obtiene un insumo por ID. Devuelve (nil, nil) si no existe.
func (uc *RawMaterialUseCase) GetByID(ctx context.Context, id string) (*dto.RawMaterialResponse, error) {
	for _, m := range uc.store.RawMaterials(ctx) {
		if m.ID == id {
			resp := toRawMaterialResponse(m)
			return &resp, nil
		}
	}
	return nil, nil
}

// Create registra un insumo nuevo.
func (uc *RawMaterialUseCase) Create(ctx context.Context, in dto.CreateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	material := entity.RawMaterial{
		ID:                uuid.New().String(),
		Name:              in.Name,
		Quantity:          in.Quantity,
		Unit:              in.Unit,
		CostPerUnit:       in.CostPerUnit,
		Supplier:          in.Supplier,
		LowStockThreshold: in.LowStockThreshold,
	}
	if err := uc.store.AddRawMaterial(ctx, material); err != nil {
		return nil, err
	}
	resp := toRawMaterialResponse(material)
	return &resp, nil
}

// Update reemplaza el registro completo. Devuelve (nil, nil) si no existe.
func (uc *RawMaterialUseCase) Update(ctx context.Context, id string, in dto.UpdateRawMaterialRequest) (*dto.RawMaterialResponse, error) {
	if in.Name == "" || in.Quantity < 0 || in.CostPerUnit.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	material := entity.RawMaterial{
		ID:                id,
		Name:              in.Name,
		Quantity:          in.Quantity,
		Unit:              in.Unit,
		CostPerUnit:       in.CostPerUnit,
		Supplier:          in.Supplier,
		LowStockThreshold: in.LowStockThreshold,
	}
	if err := uc.store.UpdateRawMaterial(ctx, material); err != nil {
		return nil, err
	}
	resp := toRawMaterialResponse(material)
	return &resp, nil
}

// Delete borra el insumo. Es no-op si el id no existe.
func (uc *RawMaterialUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteRawMaterial(ctx, id)
}

func toRawMaterialResponse(m entity.RawMaterial) dto.RawMaterialResponse {
	return dto.RawMaterialResponse{
		ID:                m.ID,
		Name:              m.Name,
		Quantity:          m.Quantity,
		Unit:              m.Unit,
		CostPerUnit:       m.CostPerUnit.Round(2),
		Supplier:          m.Supplier,
		LowStockThreshold: m.LowStockThreshold,
		StockStatus:       string(metrics.MaterialStockStatus(m)),
	}
}
