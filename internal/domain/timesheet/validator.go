package timesheet

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// ValidateEntry inspecciona un registro y emite cero o más excepciones de
// cumplimiento. Es pura y sin efectos: se invoca al guardar y al mostrar, y
// el resultado nunca se persiste. assignment puede ser nil para registros no
// billable.
func ValidateEntry(e *entity.TimeEntry, assignment *entity.Assignment) []entity.Exception {
	var excs []entity.Exception

	// Regla 1: horas extra requieren email del aprobador.
	if e.OvertimeHours.GreaterThan(decimal.Zero) && e.OvertimeApprovalEmail == "" {
		excs = append(excs, entity.Exception{
			Kind:     entity.ExceptionMissingOTApproval,
			Message:  "horas extra registradas sin email de aprobación de overtime",
			Severity: entity.SeverityBlocking,
		})
	}

	// Regla 2: el costo del registro no puede exceder el saldo de la PO.
	// PORemaining es autoritativo al momento de validar; aquí nunca se descuenta.
	if e.Billable && assignment != nil {
		cost := e.RegularHours.Add(e.OvertimeHours).Mul(assignment.BillingRate)
		if assignment.PORemaining.LessThan(cost) {
			excs = append(excs, entity.Exception{
				Kind: entity.ExceptionPOBudgetExceeded,
				Message: fmt.Sprintf("costo %s excede el saldo %s de la PO %s",
					cost.StringFixed(2), assignment.PORemaining.StringFixed(2), assignment.PONumber),
				Severity: entity.SeverityBlocking,
			})
		}
	}

	// Regla 3: suma de horas por día entre 0 y 24.
	if invalidHours(e) {
		excs = append(excs, entity.Exception{
			Kind:     entity.ExceptionInvalidHours,
			Message:  "la suma de horas del día debe estar entre 0 y 24",
			Severity: entity.SeverityBlocking,
		})
	}

	return excs
}

// HasBlocking indica si alguna excepción de la lista es bloqueante.
func HasBlocking(excs []entity.Exception) bool {
	for _, ex := range excs {
		if ex.Blocking() {
			return true
		}
	}
	return false
}

func invalidHours(e *entity.TimeEntry) bool {
	for _, h := range []decimal.Decimal{e.RegularHours, e.OvertimeHours, e.HolidayHours, e.TimeOffHours} {
		if h.LessThan(decimal.Zero) {
			return true
		}
	}
	return e.TotalHours().GreaterThan(entity.MaxDailyHours)
}
