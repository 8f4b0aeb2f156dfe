package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateExpenseRequest entrada para registrar un gasto. Date en cero usa
// la fecha actual; CreatedBy lo aporta la sesión, no el cuerpo.
type CreateExpenseRequest struct {
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required,min=1,max=300"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes"`
}

// UpdateExpenseRequest actualización de registro completo.
type UpdateExpenseRequest struct {
	Category    string          `json:"category" validate:"required"`
	Description string          `json:"description" validate:"required,min=1,max=300"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Notes       string          `json:"notes"`
}

// ExpenseResponse salida de un gasto.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedBy   string          `json:"createdBy"`
	Notes       string          `json:"notes,omitempty"`
}
