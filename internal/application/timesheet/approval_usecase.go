package timesheet

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
	domaints "github.com/talento-hr/talento-api/internal/domain/timesheet"
)

// ApprovalUseCase orquesta el motor de aprobación: envío de semanas,
// aprobaciones y rechazos por registro o por lote semanal. Toda mutación de
// estado corre dentro de una transacción que bloquea las filas de la semana
// (SELECT ... FOR UPDATE) y compara contra la instantánea leída fuera; si
// otro proceso movió la semana en medio, la operación completa se revierte
// con ErrConflict. Nunca hay efectos parciales: o transiciona toda la
// semana o nada.
type ApprovalUseCase struct {
	txRunner       TxRunner
	entryRepo      repository.TimeEntryRepository
	assignmentRepo repository.AssignmentRepository
}

// NewApprovalUseCase construye el caso de uso.
func NewApprovalUseCase(
	txRunner TxRunner,
	entryRepo repository.TimeEntryRepository,
	assignmentRepo repository.AssignmentRepository,
) *ApprovalUseCase {
	return &ApprovalUseCase{
		txRunner:       txRunner,
		entryRepo:      entryRepo,
		assignmentRepo: assignmentRepo,
	}
}

// SubmitWeek envía la semana completa a aprobación. Valida cumplimiento sobre
// todos los registros antes de tocar nada: si cualquiera tiene una excepción
// bloqueante, se devuelve la lista completa (todas las excepciones de todos
// los registros, no solo la primera) y ningún registro cambia de estado.
func (uc *ApprovalUseCase) SubmitWeek(ctx context.Context, employeeID string, weekEnding time.Time, actor entity.Actor) (*dto.TimesheetResponse, error) {
	weekEnding = domaints.WeekEnding(weekEnding)
	snapshot, err := uc.entryRepo.ListByWeek(ctx, employeeID, weekEnding)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, domain.ErrNotFound
	}
	for _, e := range snapshot {
		switch e.Status {
		case entity.EntryStatusDraft:
		case entity.EntryStatusRejected:
			// Un registro rechazado exige edición (rejected → draft) antes
			// del reenvío.
			return nil, fmt.Errorf("registro %s rechazado sin editar: %w", e.ID, domain.ErrInvalidTransition)
		default:
			return nil, domain.ErrWeekLocked
		}
	}

	assignments, err := uc.assignmentsFor(ctx, snapshot)
	if err != nil {
		return nil, err
	}
	var all []entity.Exception
	blocking := false
	for _, e := range snapshot {
		excs := domaints.ValidateEntry(e, assignments[e.AssignmentID])
		all = append(all, excs...)
		if domaints.HasBlocking(excs) {
			blocking = true
		}
	}
	if blocking {
		return nil, &domain.PolicyViolationError{Exceptions: all}
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, events repository.ApprovalEventRepository) error {
		locked, err := entries.ListByWeekForUpdate(ctx, employeeID, weekEnding)
		if err != nil {
			return err
		}
		if err := matchSnapshot(snapshot, locked); err != nil {
			return err
		}
		for _, e := range locked {
			from := e.Status
			e.Status = entity.EntryStatusSubmitted
			e.UpdatedAt = now
			if err := entries.UpdateStatus(ctx, e); err != nil {
				return err
			}
			if err := events.Create(ctx, newEvent(e, from, entity.EntryStatusSubmitted, actor, "")); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range snapshot {
		e.Status = entity.EntryStatusSubmitted
		e.UpdatedAt = now
	}
	ts := domaints.BuildTimesheet(employeeID, weekEnding, snapshot)
	return toTimesheetResponse(ts, nil), nil
}

// ApproveEntry avanza un registro una etapa según su ruta: los billables de
// asignaciones que exigen visto bueno del cliente pasan por
// pending_client_approval; los no billables van directo a contabilidad.
func (uc *ApprovalUseCase) ApproveEntry(ctx context.Context, entryID string, actor entity.Actor) (*dto.TimeEntryResponse, error) {
	e, err := uc.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if !domaints.ActorCanReview(actor.Role, e.Status) {
		return nil, domain.ErrForbidden
	}
	assignment, err := uc.assignmentFor(ctx, e)
	if err != nil {
		return nil, err
	}
	next, ok := domaints.NextOnApprove(e, assignment)
	if !ok {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, events repository.ApprovalEventRepository) error {
		locked, err := entries.ListByWeekForUpdate(ctx, e.EmployeeID, e.WeekEnding)
		if err != nil {
			return err
		}
		current := findEntry(locked, e.ID)
		if current == nil || current.Status != e.Status {
			return domain.ErrConflict
		}
		from := current.Status
		current.Status = next
		current.UpdatedAt = now
		if err := entries.UpdateStatus(ctx, current); err != nil {
			return err
		}
		return events.Create(ctx, newEvent(current, from, next, actor, ""))
	})
	if err != nil {
		return nil, err
	}

	e.Status = next
	e.UpdatedAt = now
	resp := toEntryResponse(e, nil)
	return &resp, nil
}

// RejectEntry rechaza un registro. El comentario es obligatorio: un rechazo
// sin razón no le dice nada al empleado que tiene que corregir.
func (uc *ApprovalUseCase) RejectEntry(ctx context.Context, entryID string, actor entity.Actor, comment string) (*dto.TimeEntryResponse, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("comentario de rechazo obligatorio: %w", domain.ErrInvalidInput)
	}
	e, err := uc.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if !domaints.ActorCanReview(actor.Role, e.Status) {
		return nil, domain.ErrForbidden
	}
	if !domaints.Rejectable(e.Status) {
		return nil, domain.ErrInvalidTransition
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, events repository.ApprovalEventRepository) error {
		locked, err := entries.ListByWeekForUpdate(ctx, e.EmployeeID, e.WeekEnding)
		if err != nil {
			return err
		}
		current := findEntry(locked, e.ID)
		if current == nil || current.Status != e.Status {
			return domain.ErrConflict
		}
		from := current.Status
		current.Status = entity.EntryStatusRejected
		current.RejectionComment = comment
		current.RejectedAt = &now
		current.UpdatedAt = now
		if err := entries.UpdateStatus(ctx, current); err != nil {
			return err
		}
		return events.Create(ctx, newEvent(current, from, entity.EntryStatusRejected, actor, comment))
	})
	if err != nil {
		return nil, err
	}

	e.Status = entity.EntryStatusRejected
	e.RejectionComment = comment
	e.RejectedAt = &now
	e.UpdatedAt = now
	resp := toEntryResponse(e, nil)
	return &resp, nil
}

// ApproveWeek aprueba todos los registros de la semana en una sola
// transacción. Si un solo registro no puede avanzar (ruta inválida o rol sin
// competencia sobre su etapa), ninguno avanza.
func (uc *ApprovalUseCase) ApproveWeek(ctx context.Context, employeeID string, weekEnding time.Time, actor entity.Actor) (*dto.TimesheetResponse, error) {
	weekEnding = domaints.WeekEnding(weekEnding)
	snapshot, err := uc.entryRepo.ListByWeek(ctx, employeeID, weekEnding)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, domain.ErrNotFound
	}
	assignments, err := uc.assignmentsFor(ctx, snapshot)
	if err != nil {
		return nil, err
	}

	nexts := make(map[string]entity.EntryStatus, len(snapshot))
	for _, e := range snapshot {
		if !domaints.ActorCanReview(actor.Role, e.Status) {
			return nil, domain.ErrForbidden
		}
		next, ok := domaints.NextOnApprove(e, assignments[e.AssignmentID])
		if !ok {
			return nil, domain.ErrInvalidTransition
		}
		nexts[e.ID] = next
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, events repository.ApprovalEventRepository) error {
		locked, err := entries.ListByWeekForUpdate(ctx, employeeID, weekEnding)
		if err != nil {
			return err
		}
		if err := matchSnapshot(snapshot, locked); err != nil {
			return err
		}
		for _, e := range locked {
			from := e.Status
			e.Status = nexts[e.ID]
			e.UpdatedAt = now
			if err := entries.UpdateStatus(ctx, e); err != nil {
				return err
			}
			if err := events.Create(ctx, newEvent(e, from, e.Status, actor, "")); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range snapshot {
		e.Status = nexts[e.ID]
		e.UpdatedAt = now
	}
	ts := domaints.BuildTimesheet(employeeID, weekEnding, snapshot)
	return toTimesheetResponse(ts, nil), nil
}

// RejectWeek rechaza la semana completa con un mismo comentario, en una sola
// transacción.
func (uc *ApprovalUseCase) RejectWeek(ctx context.Context, employeeID string, weekEnding time.Time, actor entity.Actor, comment string) (*dto.TimesheetResponse, error) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		return nil, fmt.Errorf("comentario de rechazo obligatorio: %w", domain.ErrInvalidInput)
	}
	weekEnding = domaints.WeekEnding(weekEnding)
	snapshot, err := uc.entryRepo.ListByWeek(ctx, employeeID, weekEnding)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, domain.ErrNotFound
	}
	for _, e := range snapshot {
		if !domaints.ActorCanReview(actor.Role, e.Status) {
			return nil, domain.ErrForbidden
		}
		if !domaints.Rejectable(e.Status) {
			return nil, domain.ErrInvalidTransition
		}
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, events repository.ApprovalEventRepository) error {
		locked, err := entries.ListByWeekForUpdate(ctx, employeeID, weekEnding)
		if err != nil {
			return err
		}
		if err := matchSnapshot(snapshot, locked); err != nil {
			return err
		}
		for _, e := range locked {
			from := e.Status
			e.Status = entity.EntryStatusRejected
			e.RejectionComment = comment
			e.RejectedAt = &now
			e.UpdatedAt = now
			if err := entries.UpdateStatus(ctx, e); err != nil {
				return err
			}
			if err := events.Create(ctx, newEvent(e, from, entity.EntryStatusRejected, actor, comment)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range snapshot {
		e.Status = entity.EntryStatusRejected
		e.RejectionComment = comment
		e.RejectedAt = &now
		e.UpdatedAt = now
	}
	ts := domaints.BuildTimesheet(employeeID, weekEnding, snapshot)
	return toTimesheetResponse(ts, nil), nil
}

// MarkWeekInvoiced cierra una semana aprobada: approved → invoiced, estado
// terminal. Reservado a contabilidad desde el router.
func (uc *ApprovalUseCase) MarkWeekInvoiced(ctx context.Context, employeeID string, weekEnding time.Time, actor entity.Actor) (*dto.TimesheetResponse, error) {
	weekEnding = domaints.WeekEnding(weekEnding)
	snapshot, err := uc.entryRepo.ListByWeek(ctx, employeeID, weekEnding)
	if err != nil {
		return nil, err
	}
	if len(snapshot) == 0 {
		return nil, domain.ErrNotFound
	}
	for _, e := range snapshot {
		if !domaints.CanTransition(e.Status, entity.EntryStatusInvoiced) {
			return nil, domain.ErrInvalidTransition
		}
	}

	now := time.Now()
	err = uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, events repository.ApprovalEventRepository) error {
		locked, err := entries.ListByWeekForUpdate(ctx, employeeID, weekEnding)
		if err != nil {
			return err
		}
		if err := matchSnapshot(snapshot, locked); err != nil {
			return err
		}
		for _, e := range locked {
			from := e.Status
			e.Status = entity.EntryStatusInvoiced
			e.UpdatedAt = now
			if err := entries.UpdateStatus(ctx, e); err != nil {
				return err
			}
			if err := events.Create(ctx, newEvent(e, from, entity.EntryStatusInvoiced, actor, "")); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, e := range snapshot {
		e.Status = entity.EntryStatusInvoiced
		e.UpdatedAt = now
	}
	ts := domaints.BuildTimesheet(employeeID, weekEnding, snapshot)
	return toTimesheetResponse(ts, nil), nil
}

func (uc *ApprovalUseCase) assignmentFor(ctx context.Context, e *entity.TimeEntry) (*entity.Assignment, error) {
	if !e.Billable || e.AssignmentID == "" {
		return nil, nil
	}
	return uc.assignmentRepo.GetByID(ctx, e.AssignmentID)
}

func (uc *ApprovalUseCase) assignmentsFor(ctx context.Context, entries []*entity.TimeEntry) (map[string]*entity.Assignment, error) {
	out := map[string]*entity.Assignment{}
	for _, e := range entries {
		if !e.Billable || e.AssignmentID == "" {
			continue
		}
		if _, ok := out[e.AssignmentID]; ok {
			continue
		}
		asg, err := uc.assignmentRepo.GetByID(ctx, e.AssignmentID)
		if err != nil {
			return nil, err
		}
		out[e.AssignmentID] = asg
	}
	return out, nil
}

// matchSnapshot compara las filas bloqueadas contra la instantánea leída
// fuera de la transacción. Cualquier diferencia en conjunto o en estado
// significa que otro proceso ganó la carrera.
func matchSnapshot(snapshot, locked []*entity.TimeEntry) error {
	if len(snapshot) != len(locked) {
		return domain.ErrConflict
	}
	byID := make(map[string]entity.EntryStatus, len(snapshot))
	for _, e := range snapshot {
		byID[e.ID] = e.Status
	}
	for _, e := range locked {
		status, ok := byID[e.ID]
		if !ok || status != e.Status {
			return domain.ErrConflict
		}
	}
	return nil
}

func findEntry(entries []*entity.TimeEntry, id string) *entity.TimeEntry {
	for _, e := range entries {
		if e.ID == id {
			return e
		}
	}
	return nil
}

func newEvent(e *entity.TimeEntry, from, to entity.EntryStatus, actor entity.Actor, comment string) *entity.ApprovalEvent {
	return &entity.ApprovalEvent{
		ID:         uuid.New().String(),
		EntryID:    e.ID,
		EmployeeID: e.EmployeeID,
		WeekEnding: e.WeekEnding,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Comment:    comment,
		CreatedAt:  time.Now(),
	}
}
