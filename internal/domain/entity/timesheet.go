package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TimesheetStatus estado agregado de la semana, derivado de sus registros.
type TimesheetStatus string

const (
	TimesheetStatusDraft     TimesheetStatus = "draft"
	TimesheetStatusSubmitted TimesheetStatus = "submitted"
	TimesheetStatusApproved  TimesheetStatus = "approved"
	TimesheetStatusRejected  TimesheetStatus = "rejected"
)

// Timesheet hoja de tiempo semanal: el agregado de todos los registros que
// comparten (EmployeeID, WeekEnding). No se almacena; existe mientras tenga
// al menos un registro y sus totales y estado se recalculan en cada lectura.
type Timesheet struct {
	EmployeeID string
	WeekEnding time.Time

	TotalRegular  decimal.Decimal
	TotalOvertime decimal.Decimal
	TotalHoliday  decimal.Decimal
	TotalTimeOff  decimal.Decimal

	Status  TimesheetStatus
	Entries []*TimeEntry
}
