package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/domain"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/repository"
)

// CustomerUseCase casos de uso CRUD para clientes. Borrar un cliente no toca
// las órdenes existentes: cada orden guarda su propio snapshot del cliente.
type CustomerUseCase struct {
	store repository.RecordStore
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(store repository.RecordStore) *CustomerUseCase {
	return &CustomerUseCase{store: store}
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List(ctx context.Context) []dto.CustomerResponse {
	customers := uc.store.Customers(ctx)
	out := make([]dto.CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, toCustomerResponse(c))
	}
	return out
}

// GetByID obtiene un cliente por ID. Devuelve (nil, nil) si no existe.
func (uc *CustomerUseCase) GetByID(ctx context.Context, id string) (*dto.CustomerResponse, error) {
	for _, c := range uc.store.Customers(ctx) {
		if c.ID == id {
			resp := toCustomerResponse(c)
			return &resp, nil
		}
	}
	return nil, nil
}

// Create crea un cliente nuevo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := entity.Customer{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		GSTNumber: in.GSTNumber,
	}
	if err := uc.store.AddCustomer(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Update reemplaza el registro completo del cliente. Devuelve (nil, nil) si
// el id no existe.
func (uc *CustomerUseCase) Update(ctx context.Context, id string, in dto.UpdateCustomerRequest) (*dto.CustomerResponse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.GetByID(ctx, id)
	if err != nil || existing == nil {
		return nil, err
	}
	customer := entity.Customer{
		ID:        id,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		GSTNumber: in.GSTNumber,
	}
	if err := uc.store.UpdateCustomer(ctx, customer); err != nil {
		return nil, err
	}
	resp := toCustomerResponse(customer)
	return &resp, nil
}

// Delete borra el cliente. Es no-op si el id no existe.
func (uc *CustomerUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteCustomer(ctx, id)
}

func toCustomerResponse(c entity.Customer) dto.CustomerResponse {
	return dto.CustomerResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		GSTNumber: c.GSTNumber,
	}
}
