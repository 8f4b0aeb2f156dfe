package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseCategories es el conjunto fijo de categorías de gasto.
var ExpenseCategories = []string{
	"Packaging",
	"Delivery",
	"Utilities",
	"Labor",
	"Raw Materials",
	"Equipment",
	"Marketing",
	"Rent",
	"Maintenance",
	"Other",
}

// Expense representa un gasto operativo.
type Expense struct {
	ID          string          `json:"id"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	CreatedBy   string          `json:"createdBy"`
	Notes       string          `json:"notes,omitempty"`
}

// ValidExpenseCategory indica si c pertenece al conjunto fijo de categorías.
func ValidExpenseCategory(c string) bool {
	for _, cat := range ExpenseCategories {
		if cat == c {
			return true
		}
	}
	return false
}
