package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus estado del ciclo de aprobación de un registro de tiempo.
// El conjunto es cerrado: cualquier transición fuera de la tabla del motor
// de aprobación se rechaza.
type EntryStatus string

const (
	EntryStatusDraft              EntryStatus = "draft"                       // Editable por el empleado
	EntryStatusSubmitted          EntryStatus = "submitted"                   // Semana enviada, pendiente de ruteo
	EntryStatusPendingReview      EntryStatus = "pending_review"              // En revisión preliminar de contabilidad
	EntryStatusPendingClient      EntryStatus = "pending_client_approval"     // Esperando visto bueno del cliente
	EntryStatusPendingAccounting  EntryStatus = "pending_accounting_approval" // Esperando aprobación de contabilidad
	EntryStatusApproved           EntryStatus = "approved"                    // Aprobado, listo para facturación
	EntryStatusRejected           EntryStatus = "rejected"                    // Rechazado; editar lo regresa a draft
	EntryStatusInvoiced           EntryStatus = "invoiced"                    // Terminal; lo estampa el módulo de facturación
)

// Categorías de registro de tiempo.
const (
	CategoryProject        = "project"
	CategoryTraining       = "training"
	CategoryAdministrative = "administrative"
	CategoryPTO            = "pto"
	CategoryHoliday        = "holiday"
)

// Tipos de tiempo.
const (
	TimeTypeBillable = "billable"
	TimeTypeHoliday  = "holiday"
	TimeTypeTimeOff  = "time_off"
)

// MaxDailyHours tope de horas por registro (suma de los cuatro campos).
var MaxDailyHours = decimal.NewFromInt(24)

// TimeEntry registro atómico de un día de trabajo de un empleado.
// WeekEnding se deriva de Date (domingo que cierra la semana que inicia lunes)
// y junto con EmployeeID determina la hoja de tiempo a la que pertenece.
type TimeEntry struct {
	ID         string
	EmployeeID string
	Date       time.Time
	WeekEnding time.Time

	Billable bool
	Category string
	TimeType string

	RegularHours  decimal.Decimal
	OvertimeHours decimal.Decimal
	HolidayHours  decimal.Decimal
	TimeOffHours  decimal.Decimal

	// OvertimeApprovalEmail obligatorio cuando OvertimeHours > 0.
	OvertimeApprovalEmail string

	// Vínculo de facturación (solo para registros billable).
	AssignmentID string
	ClientID     string
	PONumber     string
	BillingRate  decimal.Decimal
	BillingType  string

	Status           EntryStatus
	RejectionComment string
	RejectedAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TotalHours suma de los cuatro campos de horas.
func (e *TimeEntry) TotalHours() decimal.Decimal {
	return e.RegularHours.Add(e.OvertimeHours).Add(e.HolidayHours).Add(e.TimeOffHours)
}

// ClearRejection limpia comentario y fecha de rechazo (al editar un registro rechazado).
func (e *TimeEntry) ClearRejection() {
	e.RejectionComment = ""
	e.RejectedAt = nil
}
