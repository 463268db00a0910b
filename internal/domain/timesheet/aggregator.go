package timesheet

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// BuildTimesheet arma la hoja de tiempo semanal a partir de los registros de
// (employeeID, weekEnding). Es una función pura: los totales son sumas sobre
// los registros y el estado es el roll-up de sus estados; nada se cachea.
// Devuelve nil si no hay registros: una hoja nunca existe sin al menos uno.
func BuildTimesheet(employeeID string, weekEnding time.Time, entries []*entity.TimeEntry) *entity.Timesheet {
	if len(entries) == 0 {
		return nil
	}
	ts := &entity.Timesheet{
		EmployeeID:    employeeID,
		WeekEnding:    Normalize(weekEnding),
		TotalRegular:  decimal.Zero,
		TotalOvertime: decimal.Zero,
		TotalHoliday:  decimal.Zero,
		TotalTimeOff:  decimal.Zero,
		Entries:       entries,
	}
	for _, e := range entries {
		ts.TotalRegular = ts.TotalRegular.Add(e.RegularHours)
		ts.TotalOvertime = ts.TotalOvertime.Add(e.OvertimeHours)
		ts.TotalHoliday = ts.TotalHoliday.Add(e.HolidayHours)
		ts.TotalTimeOff = ts.TotalTimeOff.Add(e.TimeOffHours)
	}
	ts.Status = RollUpStatus(entries)
	return ts
}

// RollUpStatus deriva el estado de la semana desde los estados de sus
// registros. Precedencia: rejected > approved > submitted > draft.
//   - rejected: al menos un registro rechazado.
//   - approved: todos aprobados (o facturados).
//   - submitted: todos en vuelo (submitted, pending_*) o ya aprobados; una
//     semana con registros en revisión no regresa a draft y por tanto no es
//     editable.
//   - draft: en cualquier otro caso.
func RollUpStatus(entries []*entity.TimeEntry) entity.TimesheetStatus {
	if len(entries) == 0 {
		return entity.TimesheetStatusDraft
	}
	allApproved := true
	allInFlight := true
	for _, e := range entries {
		switch e.Status {
		case entity.EntryStatusRejected:
			return entity.TimesheetStatusRejected
		case entity.EntryStatusApproved, entity.EntryStatusInvoiced:
			// cuenta como aprobado y como en vuelo
		case entity.EntryStatusSubmitted, entity.EntryStatusPendingReview,
			entity.EntryStatusPendingClient, entity.EntryStatusPendingAccounting:
			allApproved = false
		default: // draft
			allApproved = false
			allInFlight = false
		}
	}
	if allApproved {
		return entity.TimesheetStatusApproved
	}
	if allInFlight {
		return entity.TimesheetStatusSubmitted
	}
	return entity.TimesheetStatusDraft
}

// Editable indica si la semana admite crear/editar/eliminar registros.
func Editable(status entity.TimesheetStatus) bool {
	return status == entity.TimesheetStatusDraft || status == entity.TimesheetStatusRejected
}
