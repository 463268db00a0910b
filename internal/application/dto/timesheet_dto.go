package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout formato de fechas en la API (solo día calendario).
const DateLayout = "2006-01-02"

// CreateTimeEntriesRequest body para POST /api/timesheets/entries.
// Dates admite varios días: el alta manual de una semana completa produce un
// registro por fecha, nunca un registro que abarque varios días.
type CreateTimeEntriesRequest struct {
	EmployeeID string   `json:"employee_id"`
	Dates      []string `json:"dates"` // YYYY-MM-DD

	Billable bool   `json:"billable"`
	Category string `json:"category"`
	TimeType string `json:"time_type"`

	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HolidayHours  decimal.Decimal `json:"holiday_hours"`
	TimeOffHours  decimal.Decimal `json:"time_off_hours"`

	OvertimeApprovalEmail string `json:"overtime_approval_email,omitempty"`

	// AssignmentID obligatorio cuando billable: de ahí salen cliente, PO y tarifa.
	AssignmentID string `json:"assignment_id,omitempty"`
}

// UpdateTimeEntryRequest body para PUT /api/timesheets/entries/:id.
type UpdateTimeEntryRequest struct {
	Billable bool   `json:"billable"`
	Category string `json:"category"`
	TimeType string `json:"time_type"`

	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HolidayHours  decimal.Decimal `json:"holiday_hours"`
	TimeOffHours  decimal.Decimal `json:"time_off_hours"`

	OvertimeApprovalEmail string `json:"overtime_approval_email,omitempty"`
	AssignmentID          string `json:"assignment_id,omitempty"`
}

// TimeEntryResponse registro de tiempo en respuestas. Exceptions se deriva en
// cada lectura, nunca viene de la base.
type TimeEntryResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	WeekEnding string `json:"week_ending"`

	Billable bool   `json:"billable"`
	Category string `json:"category"`
	TimeType string `json:"time_type"`

	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	HolidayHours  decimal.Decimal `json:"holiday_hours"`
	TimeOffHours  decimal.Decimal `json:"time_off_hours"`

	OvertimeApprovalEmail string `json:"overtime_approval_email,omitempty"`

	AssignmentID string          `json:"assignment_id,omitempty"`
	ClientID     string          `json:"client_id,omitempty"`
	PONumber     string          `json:"po_number,omitempty"`
	BillingRate  decimal.Decimal `json:"billing_rate"`
	BillingType  string          `json:"billing_type,omitempty"`

	Status           string     `json:"status"`
	RejectionComment string     `json:"rejection_comment,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at,omitempty"`

	Exceptions []ExceptionResponse `json:"exceptions,omitempty"`
}

// TimesheetResponse hoja de tiempo semanal para la UI de revisión.
type TimesheetResponse struct {
	EmployeeID string `json:"employee_id"`
	WeekEnding string `json:"week_ending"`

	TotalRegular  decimal.Decimal `json:"total_regular"`
	TotalOvertime decimal.Decimal `json:"total_overtime"`
	TotalHoliday  decimal.Decimal `json:"total_holiday"`
	TotalTimeOff  decimal.Decimal `json:"total_time_off"`

	Status  string              `json:"status"`
	Entries []TimeEntryResponse `json:"entries"`
}

// QueueItemResponse elemento de una cola de aprobación. Amount es el monto
// calculado: regular*tarifa + extra*tarifa*1.5.
type QueueItemResponse struct {
	EntryID       string          `json:"entry_id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	ClientID      string          `json:"client_id,omitempty"`
	PONumber      string          `json:"po_number,omitempty"`
	Date          string          `json:"date"`
	WeekEnding    string          `json:"week_ending"`
	Status        string          `json:"status"`
	RegularHours  decimal.Decimal `json:"regular_hours"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	Amount        decimal.Decimal `json:"amount"`
}

// RejectRequest body de rechazo; el comentario es obligatorio.
type RejectRequest struct {
	Comment string `json:"comment"`
}

// ApprovalEventResponse evento de auditoría de un registro.
type ApprovalEventResponse struct {
	ID         string    `json:"id"`
	EntryID    string    `json:"entry_id"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
