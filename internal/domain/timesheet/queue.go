package timesheet

import (
	"github.com/shopspring/decimal"
	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// overtimeRate recargo fijo del 50% sobre la tarifa para horas extra.
var overtimeRate = decimal.NewFromFloat(1.5)

// ClientQueueStatuses estados que componen la cola de aprobación del cliente.
var ClientQueueStatuses = []entity.EntryStatus{
	entity.EntryStatusPendingClient,
}

// AccountingQueueStatuses estados que componen la cola de contabilidad.
var AccountingQueueStatuses = []entity.EntryStatus{
	entity.EntryStatusSubmitted,
	entity.EntryStatusPendingReview,
	entity.EntryStatusPendingAccounting,
}

// BilledAmount monto facturable de un registro:
// regular*tarifa + extra*tarifa*1.5. Cero para registros no billable.
func BilledAmount(e *entity.TimeEntry) decimal.Decimal {
	if !e.Billable {
		return decimal.Zero
	}
	regular := e.RegularHours.Mul(e.BillingRate)
	overtime := e.OvertimeHours.Mul(e.BillingRate).Mul(overtimeRate)
	return regular.Add(overtime)
}

// InClientQueue indica si el registro pertenece hoy a la cola del cliente.
// La membresía es una consulta sobre el estado vivo, nunca una lista guardada.
func InClientQueue(e *entity.TimeEntry) bool {
	return inSet(e.Status, ClientQueueStatuses)
}

// InAccountingQueue indica si el registro pertenece hoy a la cola de contabilidad.
func InAccountingQueue(e *entity.TimeEntry) bool {
	return inSet(e.Status, AccountingQueueStatuses)
}

func inSet(s entity.EntryStatus, set []entity.EntryStatus) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
