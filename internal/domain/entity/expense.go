package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un gasto. Ciclo simple, independiente del motor de hojas de tiempo.
const (
	ExpenseStatusDraft     = "draft"
	ExpenseStatusSubmitted = "submitted"
	ExpenseStatusApproved  = "approved"
	ExpenseStatusRejected  = "rejected"
)

// Categorías de gasto.
const (
	ExpenseCategoryTravel   = "travel"
	ExpenseCategoryMeals    = "meals"
	ExpenseCategorySupplies = "supplies"
	ExpenseCategoryOther    = "other"
)

// Expense gasto reembolsable de un empleado.
type Expense struct {
	ID          string
	EmployeeID  string
	Date        time.Time
	Category    string
	Amount      decimal.Decimal
	Description string
	ReceiptURL  string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
