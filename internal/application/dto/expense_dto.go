package dto

import "github.com/shopspring/decimal"

// CreateExpenseRequest body para POST /api/expenses.
type CreateExpenseRequest struct {
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"` // YYYY-MM-DD
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
}

// ExpenseResponse gasto en respuestas.
type ExpenseResponse struct {
	ID          string          `json:"id"`
	EmployeeID  string          `json:"employee_id"`
	Date        string          `json:"date"`
	Category    string          `json:"category"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description,omitempty"`
	ReceiptURL  string          `json:"receipt_url,omitempty"`
	Status      string          `json:"status"`
}
