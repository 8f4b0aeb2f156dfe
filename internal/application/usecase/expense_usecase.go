package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/khakhra/business-manager/internal/application/dto"
	"github.com/khakhra/business-manager/internal/domain"
	"github.com/khakhra/business-manager/internal/domain/entity"
	"github.com/khakhra/business-manager/internal/domain/repository"
)

// ExpenseUseCase casos de uso de gastos operativos. La categoría debe
// pertenecer al conjunto fijo de entity.ExpenseCategories.
type ExpenseUseCase struct {
	store repository.RecordStore
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(store repository.RecordStore) *ExpenseUseCase {
	return &ExpenseUseCase{store: store}
}

// List devuelve todos los gastos, el más reciente primero.
func (uc *ExpenseUseCase) List(ctx context.Context) []dto.ExpenseResponse {
	expenses := uc.store.Expenses(ctx)
	out := make([]dto.ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, toExpenseResponse(e))
	}
	return out
}

// Categories devuelve el conjunto fijo de categorías válidas.
func (uc *ExpenseUseCase) Categories() []string {
	out := make([]string, len(entity.ExpenseCategories))
	copy(out, entity.ExpenseCategories)
	return out
}

// GetByID obtiene un gasto por ID. Devuelve (nil, nil) si no existe.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	for _, e := range uc.store.Expenses(ctx) {
		if e.ID == id {
			resp := toExpenseResponse(e)
			return &resp, nil
		}
	}
	return nil, nil
}

// Create registra un gasto. createdBy viene de la sesión, no del cuerpo.
// Fecha en cero usa la fecha actual.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest, createdBy string) (*dto.ExpenseResponse, error) {
	if !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if in.Description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	date := in.Date
	if date.IsZero() {
		date = time.Now()
	}
	expense := entity.Expense{
		ID:          uuid.New().String(),
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
		CreatedBy:   createdBy,
		Notes:       in.Notes,
	}
	if err := uc.store.AddExpense(ctx, expense); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// Update reemplaza el registro completo conservando CreatedBy. Devuelve
// (nil, nil) si el id no existe.
func (uc *ExpenseUseCase) Update(ctx context.Context, id string, in dto.UpdateExpenseRequest) (*dto.ExpenseResponse, error) {
	if !entity.ValidExpenseCategory(in.Category) {
		return nil, domain.ErrInvalidCategory
	}
	if in.Description == "" || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	var existing *entity.Expense
	for _, e := range uc.store.Expenses(ctx) {
		if e.ID == id {
			found := e
			existing = &found
			break
		}
	}
	if existing == nil {
		return nil, nil
	}
	date := in.Date
	if date.IsZero() {
		date = existing.Date
	}
	expense := entity.Expense{
		ID:          id,
		Category:    in.Category,
		Description: in.Description,
		Amount:      in.Amount,
		Date:        date,
		CreatedBy:   existing.CreatedBy,
		Notes:       in.Notes,
	}
	if err := uc.store.UpdateExpense(ctx, expense); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(expense)
	return &resp, nil
}

// Delete borra el gasto. Es no-op si el id no existe.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	return uc.store.DeleteExpense(ctx, id)
}

func toExpenseResponse(e entity.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ID,
		Category:    e.Category,
		Description: e.Description,
		Amount:      e.Amount.Round(2),
		Date:        e.Date,
		CreatedBy:   e.CreatedBy,
		Notes:       e.Notes,
	}
}
