package timesheet_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/timesheet"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tabla de transiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestCanTransition_CaminoFeliz(t *testing.T) {
	camino := []entity.EntryStatus{
		entity.EntryStatusDraft,
		entity.EntryStatusSubmitted,
		entity.EntryStatusPendingClient,
		entity.EntryStatusPendingAccounting,
		entity.EntryStatusApproved,
		entity.EntryStatusInvoiced,
	}
	for i := 0; i < len(camino)-1; i++ {
		assert.True(t, timesheet.CanTransition(camino[i], camino[i+1]),
			"debe permitirse %s → %s", camino[i], camino[i+1])
	}
}

func TestCanTransition_RechazoDesdeEtapasDeRevision(t *testing.T) {
	for _, from := range []entity.EntryStatus{
		entity.EntryStatusDraft,
		entity.EntryStatusSubmitted,
		entity.EntryStatusPendingReview,
		entity.EntryStatusPendingClient,
		entity.EntryStatusPendingAccounting,
	} {
		assert.True(t, timesheet.CanTransition(from, entity.EntryStatusRejected),
			"%s debe poder rechazarse", from)
	}
}

func TestCanTransition_FueraDeTablaSeRechaza(t *testing.T) {
	casos := []struct{ from, to entity.EntryStatus }{
		{entity.EntryStatusDraft, entity.EntryStatusApproved},
		{entity.EntryStatusRejected, entity.EntryStatusSubmitted}, // debe editarse primero
		{entity.EntryStatusApproved, entity.EntryStatusDraft},
		{entity.EntryStatusApproved, entity.EntryStatusRejected}, // approved ya no se rechaza
		{entity.EntryStatusInvoiced, entity.EntryStatusDraft},    // terminal
		{entity.EntryStatusSubmitted, entity.EntryStatusApproved},
	}
	for _, c := range casos {
		assert.False(t, timesheet.CanTransition(c.from, c.to),
			"no debe permitirse %s → %s", c.from, c.to)
	}
}

func TestCanTransition_RechazadoSoloVuelveADraft(t *testing.T) {
	assert.True(t, timesheet.CanTransition(entity.EntryStatusRejected, entity.EntryStatusDraft))
	for _, to := range []entity.EntryStatus{
		entity.EntryStatusSubmitted,
		entity.EntryStatusPendingClient,
		entity.EntryStatusApproved,
	} {
		assert.False(t, timesheet.CanTransition(entity.EntryStatusRejected, to))
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// NextOnApprove: ruteo según billable y asignación
// ──────────────────────────────────────────────────────────────────────────────

func TestNextOnApprove_BillableConVistoBuenoDelCliente(t *testing.T) {
	e := &entity.TimeEntry{Billable: true, Status: entity.EntryStatusSubmitted, BillingRate: decimal.NewFromInt(50)}
	asg := &entity.Assignment{RequiresClientApproval: true}

	next, ok := timesheet.NextOnApprove(e, asg)
	assert.True(t, ok)
	assert.Equal(t, entity.EntryStatusPendingClient, next,
		"billable con sign-off de cliente pasa por la cola del cliente")
}

func TestNextOnApprove_NoBillableSaltaAlCliente(t *testing.T) {
	e := &entity.TimeEntry{Billable: false, Status: entity.EntryStatusSubmitted}

	next, ok := timesheet.NextOnApprove(e, nil)
	assert.True(t, ok)
	assert.Equal(t, entity.EntryStatusPendingAccounting, next,
		"no billable omite por completo la aprobación del cliente")
}

func TestNextOnApprove_BillableSinSignOffDeCliente(t *testing.T) {
	e := &entity.TimeEntry{Billable: true, Status: entity.EntryStatusPendingReview}
	asg := &entity.Assignment{RequiresClientApproval: false}

	next, ok := timesheet.NextOnApprove(e, asg)
	assert.True(t, ok)
	assert.Equal(t, entity.EntryStatusPendingAccounting, next)
}

func TestNextOnApprove_EtapasFinales(t *testing.T) {
	e := &entity.TimeEntry{Status: entity.EntryStatusPendingClient}
	next, ok := timesheet.NextOnApprove(e, nil)
	assert.True(t, ok)
	assert.Equal(t, entity.EntryStatusPendingAccounting, next)

	e.Status = entity.EntryStatusPendingAccounting
	next, ok = timesheet.NextOnApprove(e, nil)
	assert.True(t, ok)
	assert.Equal(t, entity.EntryStatusApproved, next)
}

func TestNextOnApprove_EstadosNoAprobables(t *testing.T) {
	for _, s := range []entity.EntryStatus{
		entity.EntryStatusDraft,
		entity.EntryStatusApproved,
		entity.EntryStatusRejected,
		entity.EntryStatusInvoiced,
	} {
		e := &entity.TimeEntry{Status: s}
		_, ok := timesheet.NextOnApprove(e, nil)
		assert.False(t, ok, "%s no admite aprobación", s)
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ActorCanReview: quién puede actuar en cada etapa
// ──────────────────────────────────────────────────────────────────────────────

func TestActorCanReview_ClientApproverSoloSuCola(t *testing.T) {
	assert.True(t, timesheet.ActorCanReview(entity.RoleClientApprover, entity.EntryStatusPendingClient))
	assert.False(t, timesheet.ActorCanReview(entity.RoleClientApprover, entity.EntryStatusPendingAccounting))
	assert.False(t, timesheet.ActorCanReview(entity.RoleClientApprover, entity.EntryStatusSubmitted))
}

func TestActorCanReview_AccountingSoloSusEtapas(t *testing.T) {
	assert.True(t, timesheet.ActorCanReview(entity.RoleAccounting, entity.EntryStatusSubmitted))
	assert.True(t, timesheet.ActorCanReview(entity.RoleAccounting, entity.EntryStatusPendingReview))
	assert.True(t, timesheet.ActorCanReview(entity.RoleAccounting, entity.EntryStatusPendingAccounting))
	assert.False(t, timesheet.ActorCanReview(entity.RoleAccounting, entity.EntryStatusPendingClient),
		"contabilidad no aprueba en nombre del cliente")
}

func TestActorCanReview_AdminCualquierEtapaEnVuelo(t *testing.T) {
	assert.True(t, timesheet.ActorCanReview(entity.RoleAdmin, entity.EntryStatusPendingClient))
	assert.True(t, timesheet.ActorCanReview(entity.RoleAdmin, entity.EntryStatusPendingAccounting))
	assert.False(t, timesheet.ActorCanReview(entity.RoleAdmin, entity.EntryStatusDraft))
	assert.False(t, timesheet.ActorCanReview(entity.RoleAdmin, entity.EntryStatusInvoiced))
}

func TestActorCanReview_EmployeeNuncaRevisa(t *testing.T) {
	assert.False(t, timesheet.ActorCanReview(entity.RoleEmployee, entity.EntryStatusSubmitted))
	assert.False(t, timesheet.ActorCanReview(entity.RoleEmployee, entity.EntryStatusPendingClient))
}

// ──────────────────────────────────────────────────────────────────────────────
// Colas y montos
// ──────────────────────────────────────────────────────────────────────────────

func TestBilledAmount_OvertimeAl150PorCiento(t *testing.T) {
	e := &entity.TimeEntry{
		Billable:      true,
		RegularHours:  decimal.NewFromInt(8),
		OvertimeHours: decimal.NewFromInt(2),
		BillingRate:   decimal.NewFromInt(50),
	}
	// 8*50 + 2*50*1.5 = 400 + 150 = 550
	assert.True(t, timesheet.BilledAmount(e).Equal(decimal.NewFromInt(550)),
		"el overtime se factura con recargo de 1.5x")
}

func TestBilledAmount_NoBillableEsCero(t *testing.T) {
	e := &entity.TimeEntry{
		RegularHours: decimal.NewFromInt(8),
		BillingRate:  decimal.NewFromInt(50),
	}
	assert.True(t, timesheet.BilledAmount(e).IsZero())
}

func TestQueueMembership_EsFuncionDelEstadoVivo(t *testing.T) {
	e := &entity.TimeEntry{Status: entity.EntryStatusPendingClient}
	assert.True(t, timesheet.InClientQueue(e))
	assert.False(t, timesheet.InAccountingQueue(e))

	// Al avanzar de etapa, el registro cambia de cola de inmediato.
	e.Status = entity.EntryStatusPendingAccounting
	assert.False(t, timesheet.InClientQueue(e))
	assert.True(t, timesheet.InAccountingQueue(e))

	e.Status = entity.EntryStatusApproved
	assert.False(t, timesheet.InClientQueue(e))
	assert.False(t, timesheet.InAccountingQueue(e), "aprobado ya no pertenece a ninguna cola")
}

func TestQueueMembership_SubmittedYEnRevisionVanAContabilidad(t *testing.T) {
	for _, s := range []entity.EntryStatus{
		entity.EntryStatusSubmitted,
		entity.EntryStatusPendingReview,
		entity.EntryStatusPendingAccounting,
	} {
		e := &entity.TimeEntry{Status: s}
		assert.True(t, timesheet.InAccountingQueue(e), "%s pertenece a la cola de contabilidad", s)
	}
}
