package timesheet_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talento-hr/talento-api/internal/domain"
	"github.com/talento-hr/talento-api/internal/domain/entity"
)

var (
	actorEmployee   = entity.Actor{ID: "usr-emp", Role: entity.RoleEmployee}
	actorClient     = entity.Actor{ID: "usr-cli", Role: entity.RoleClientApprover}
	actorAccounting = entity.Actor{ID: "usr-acc", Role: entity.RoleAccounting}
)

// ─────────────────────────────────────────────────────────────────────────────
// Envío de la semana
// ─────────────────────────────────────────────────────────────────────────────

func TestSubmitWeek_TodaLaSemanaAvanza(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusDraft, false, "")
	f.seedEntry("e2", "emp-1", "2025-03-11", entity.EntryStatusDraft, false, "")

	out, err := f.approvalUC.SubmitWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorEmployee)

	require.NoError(t, err)
	assert.Equal(t, string(entity.TimesheetStatusSubmitted), out.Status)
	require.Len(t, out.Entries, 2)
	for _, e := range out.Entries {
		assert.Equal(t, string(entity.EntryStatusSubmitted), e.Status,
			"la respuesta refleja el estado tras el envío, no el previo")
	}
	for _, id := range []string{"e1", "e2"} {
		assert.Equal(t, entity.EntryStatusSubmitted, f.entries.get(id).Status,
			"todos los registros de la semana pasan a submitted")
	}
	assert.Equal(t, 2, f.events.count(), "un evento de auditoría por registro")
}

func TestSubmitWeek_ExcepcionBloqueanteDetieneTodo(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	ok := f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusDraft, false, "")
	bad := f.seedEntry("e2", "emp-1", "2025-03-11", entity.EntryStatusDraft, false, "")
	bad.OvertimeHours = decimal.NewFromInt(2) // horas extra sin correo de aprobación
	f.entries.entries["e2"] = bad

	_, err := f.approvalUC.SubmitWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorEmployee)

	pv, isPV := domain.AsPolicyViolation(err)
	require.True(t, isPV, "una excepción bloqueante debe reportarse como violación de política")
	require.Len(t, pv.Exceptions, 1)
	assert.Equal(t, entity.ExceptionMissingOTApproval, pv.Exceptions[0].Kind)

	assert.Equal(t, entity.EntryStatusDraft, f.entries.get(ok.ID).Status,
		"ningún registro avanza si uno bloquea: todo o nada")
	assert.Equal(t, entity.EntryStatusDraft, f.entries.get(bad.ID).Status)
	assert.Zero(t, f.events.count())
}

func TestSubmitWeek_PresupuestoPOExcedido(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedAssignment("asg-1", 100, true) // restan $100; 8h * $50 = $400
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusDraft, true, "asg-1")

	_, err := f.approvalUC.SubmitWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorEmployee)

	pv, isPV := domain.AsPolicyViolation(err)
	require.True(t, isPV)
	require.Len(t, pv.Exceptions, 1)
	assert.Equal(t, entity.ExceptionPOBudgetExceeded, pv.Exceptions[0].Kind)
}

func TestSubmitWeek_RecolectaTodasLasExcepciones(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedAssignment("asg-1", 100, true)
	e1 := f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusDraft, true, "asg-1")
	e1.OvertimeHours = decimal.NewFromInt(2)
	f.entries.entries["e1"] = e1
	f.seedEntry("e2", "emp-1", "2025-03-11", entity.EntryStatusDraft, true, "asg-1")

	_, err := f.approvalUC.SubmitWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorEmployee)

	pv, isPV := domain.AsPolicyViolation(err)
	require.True(t, isPV)
	// e1: falta correo de OT + PO excedida; e2: PO excedida. La lista es
	// completa, no se corta en la primera.
	assert.Len(t, pv.Exceptions, 3, "se reportan las excepciones de todos los registros")
}

func TestSubmitWeek_RechazadoExigeEdicionPrevia(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusRejected, false, "")

	_, err := f.approvalUC.SubmitWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorEmployee)
	require.ErrorIs(t, err, domain.ErrInvalidTransition,
		"un rechazado debe editarse (volver a draft) antes del reenvío")
}

func TestSubmitWeek_CarreraPerdidaDevuelveConflicto(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusDraft, false, "")
	f.seedEntry("e2", "emp-1", "2025-03-11", entity.EntryStatusDraft, false, "")

	// Otro proceso compromete su escritura entre la lectura y el candado.
	f.tx.beforeRun = func() {
		f.entries.setStatus("e2", entity.EntryStatusSubmitted)
	}

	_, err := f.approvalUC.SubmitWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorEmployee)

	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.EntryStatusDraft, f.entries.get("e1").Status,
		"el perdedor de la carrera no deja efectos parciales")
	assert.Zero(t, f.events.count())
}

// ─────────────────────────────────────────────────────────────────────────────
// Aprobación por registro: enrutamiento por etapas
// ─────────────────────────────────────────────────────────────────────────────

func TestApproveEntry_BillablePasaPorElCliente(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedAssignment("asg-1", 100000, true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusSubmitted, true, "asg-1")

	out, err := f.approvalUC.ApproveEntry(context.Background(), "e1", actorAccounting)
	require.NoError(t, err)
	assert.Equal(t, string(entity.EntryStatusPendingClient), out.Status)

	out, err = f.approvalUC.ApproveEntry(context.Background(), "e1", actorClient)
	require.NoError(t, err)
	assert.Equal(t, string(entity.EntryStatusPendingAccounting), out.Status)

	out, err = f.approvalUC.ApproveEntry(context.Background(), "e1", actorAccounting)
	require.NoError(t, err)
	assert.Equal(t, string(entity.EntryStatusApproved), out.Status)

	assert.Equal(t, 3, f.events.count(), "cada etapa deja su evento")
}

func TestApproveEntry_NoBillableSaltaAlCliente(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusSubmitted, false, "")

	out, err := f.approvalUC.ApproveEntry(context.Background(), "e1", actorAccounting)
	require.NoError(t, err)
	assert.Equal(t, string(entity.EntryStatusPendingAccounting), out.Status,
		"lo no billable nunca pisa la cola del cliente")
}

func TestApproveEntry_RolSinCompetenciaSobreLaEtapa(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusSubmitted, false, "")

	_, err := f.approvalUC.ApproveEntry(context.Background(), "e1", actorClient)
	require.ErrorIs(t, err, domain.ErrForbidden,
		"el aprobador de cliente solo revisa pending_client_approval")
}

func TestApproveEntry_CarreraConRechazo(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusSubmitted, false, "")

	// Un rechazo concurrente gana entre la lectura y el candado.
	f.tx.beforeRun = func() {
		f.entries.setStatus("e1", entity.EntryStatusRejected)
	}

	_, err := f.approvalUC.ApproveEntry(context.Background(), "e1", actorAccounting)
	require.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, entity.EntryStatusRejected, f.entries.get("e1").Status,
		"gana el rechazo; la aprobación perdedora no deja rastro")
}

// ─────────────────────────────────────────────────────────────────────────────
// Rechazo
// ─────────────────────────────────────────────────────────────────────────────

func TestRejectEntry_ComentarioObligatorio(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusSubmitted, false, "")

	_, err := f.approvalUC.RejectEntry(context.Background(), "e1", actorAccounting, "   ")
	require.ErrorIs(t, err, domain.ErrInvalidInput, "rechazo sin comentario no procede")
	assert.Equal(t, entity.EntryStatusSubmitted, f.entries.get("e1").Status)
}

func TestRejectEntry_SellaComentarioYFecha(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusPendingAccounting, false, "")

	out, err := f.approvalUC.RejectEntry(context.Background(), "e1", actorAccounting, "horas del martes no cuadran")
	require.NoError(t, err)
	assert.Equal(t, string(entity.EntryStatusRejected), out.Status)
	assert.Equal(t, "horas del martes no cuadran", out.RejectionComment)
	assert.NotNil(t, out.RejectedAt)

	events, err := f.events.ListByEntry(context.Background(), "e1")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "horas del martes no cuadran", events[0].Comment)
}

// ─────────────────────────────────────────────────────────────────────────────
// Lote semanal
// ─────────────────────────────────────────────────────────────────────────────

func TestApproveWeek_TodoONada(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusSubmitted, false, "")
	f.seedEntry("e2", "emp-1", "2025-03-11", entity.EntryStatusDraft, false, "")

	_, err := f.approvalUC.ApproveWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorAccounting)

	require.ErrorIs(t, err, domain.ErrForbidden,
		"un registro aún en draft tumba el lote completo")
	assert.Equal(t, entity.EntryStatusSubmitted, f.entries.get("e1").Status)
	assert.Equal(t, entity.EntryStatusDraft, f.entries.get("e2").Status)
	assert.Zero(t, f.events.count())
}

func TestApproveWeek_AvanzaTodaLaSemana(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusPendingAccounting, false, "")
	f.seedEntry("e2", "emp-1", "2025-03-11", entity.EntryStatusPendingAccounting, false, "")

	out, err := f.approvalUC.ApproveWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorAccounting)

	require.NoError(t, err)
	assert.Equal(t, string(entity.TimesheetStatusApproved), out.Status)
	assert.Equal(t, entity.EntryStatusApproved, f.entries.get("e1").Status)
	assert.Equal(t, entity.EntryStatusApproved, f.entries.get("e2").Status)
}

func TestRejectWeek_TodaLaSemanaConElMismoComentario(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusSubmitted, false, "")
	f.seedEntry("e2", "emp-1", "2025-03-11", entity.EntryStatusSubmitted, false, "")

	out, err := f.approvalUC.RejectWeek(context.Background(), "emp-1", mustDate("2025-03-16"), actorAccounting, "semana incompleta")

	require.NoError(t, err)
	assert.Equal(t, string(entity.TimesheetStatusRejected), out.Status)
	for _, id := range []string{"e1", "e2"} {
		e := f.entries.get(id)
		assert.Equal(t, entity.EntryStatusRejected, e.Status)
		assert.Equal(t, "semana incompleta", e.RejectionComment)
	}
}

func TestMarkWeekInvoiced_SoloDesdeApproved(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusApproved, false, "")

	out, err := f.approvalUC.MarkWeekInvoiced(context.Background(), "emp-1", mustDate("2025-03-16"), actorAccounting)
	require.NoError(t, err)
	require.Len(t, out.Entries, 1)
	assert.Equal(t, string(entity.EntryStatusInvoiced), out.Entries[0].Status)

	// invoiced es terminal: ni rechazo ni reenvío.
	_, err = f.approvalUC.RejectEntry(context.Background(), "e1", actorAccounting, "tarde")
	require.ErrorIs(t, err, domain.ErrForbidden)
}

// ─────────────────────────────────────────────────────────────────────────────
// Colas derivadas
// ─────────────────────────────────────────────────────────────────────────────

func TestColas_SeDerivanDelEstadoVivo(t *testing.T) {
	f := newFixture()
	f.seedEmployee("emp-1", true)
	f.seedAssignment("asg-1", 100000, true)
	f.seedEntry("e1", "emp-1", "2025-03-10", entity.EntryStatusPendingClient, true, "asg-1")
	f.seedEntry("e2", "emp-1", "2025-03-11", entity.EntryStatusSubmitted, false, "")
	f.seedEntry("e3", "emp-1", "2025-03-12", entity.EntryStatusApproved, false, "")

	clientQ, err := f.queueUC.ListClientQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, clientQ, 1)
	assert.Equal(t, "e1", clientQ[0].EntryID)
	assert.Equal(t, "Ana Campos", clientQ[0].EmployeeName)
	// 8h regulares * $50: el monto se calcula, no se almacena.
	assert.True(t, clientQ[0].Amount.Equal(decimal.NewFromInt(400)),
		"monto esperado $400, obtuvo %s", clientQ[0].Amount)

	accQ, err := f.queueUC.ListAccountingQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, accQ, 1, "approved ya no pertenece a ninguna cola")
	assert.Equal(t, "e2", accQ[0].EntryID)

	// Al aprobar e1 sale de la cola del cliente en la siguiente lectura.
	_, err = f.approvalUC.ApproveEntry(context.Background(), "e1", actorClient)
	require.NoError(t, err)
	clientQ, err = f.queueUC.ListClientQueue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, clientQ)
}
