package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de facturación de una asignación.
const (
	BillingTypeHourly = "hourly"
	BillingTypeDaily  = "daily"
)

// Assignment vínculo empleado↔cliente↔orden de compra. Es el registro de
// referencia del motor: aporta tarifa y presupuesto de la PO. PORemaining es
// autoritativo al validar; este sistema nunca lo decrementa (eso le toca al
// módulo de facturación).
type Assignment struct {
	ID         string
	EmployeeID string
	ClientID   string
	VendorID   string

	PONumber    string
	POLimit     decimal.Decimal
	POUtilized  decimal.Decimal
	PORemaining decimal.Decimal

	BillingRate decimal.Decimal
	BillingType string

	// RequiresClientApproval: los registros billable de esta asignación pasan
	// por la cola del cliente antes de contabilidad.
	RequiresClientApproval bool

	WorkLocation string // onsite | remote | hybrid
	Active       bool

	StartDate time.Time
	EndDate   *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}
