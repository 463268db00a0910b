package dto

import "github.com/shopspring/decimal"

// CreateAssignmentRequest body para POST /api/assignments.
type CreateAssignmentRequest struct {
	EmployeeID string `json:"employee_id"`
	ClientID   string `json:"client_id"`
	VendorID   string `json:"vendor_id,omitempty"`

	PONumber string          `json:"po_number"`
	POLimit  decimal.Decimal `json:"po_limit"`

	BillingRate decimal.Decimal `json:"billing_rate"`
	BillingType string          `json:"billing_type"`

	RequiresClientApproval bool   `json:"requires_client_approval"`
	WorkLocation           string `json:"work_location,omitempty"`
	StartDate              string `json:"start_date"` // YYYY-MM-DD
}

// AssignmentResponse asignación en respuestas, con el estado de la PO.
type AssignmentResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	ClientID   string `json:"client_id"`
	VendorID   string `json:"vendor_id,omitempty"`

	PONumber    string          `json:"po_number"`
	POLimit     decimal.Decimal `json:"po_limit"`
	POUtilized  decimal.Decimal `json:"po_utilized"`
	PORemaining decimal.Decimal `json:"po_remaining"`

	BillingRate decimal.Decimal `json:"billing_rate"`
	BillingType string          `json:"billing_type"`

	RequiresClientApproval bool   `json:"requires_client_approval"`
	WorkLocation           string `json:"work_location,omitempty"`
	Active                 bool   `json:"active"`
	StartDate              string `json:"start_date"`
}
