package timesheet

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
	domaints "github.com/talento-hr/talento-api/internal/domain/timesheet"
)

// EntryUseCase altas, ediciones y bajas de registros de tiempo, con las
// compuertas del ciclo de vida: directorio de empleados, semana editable y
// rango de horas. La validación de cumplimiento corre en cada mutación y en
// cada lectura; las excepciones no bloqueantes del envío se guardan igual y
// se reportan al caller.
type EntryUseCase struct {
	txRunner       TxRunner
	entryRepo      repository.TimeEntryRepository
	assignmentRepo repository.AssignmentRepository
	employeeRepo   repository.EmployeeRepository
	eventRepo      repository.ApprovalEventRepository
}

// NewEntryUseCase construye el caso de uso.
func NewEntryUseCase(
	txRunner TxRunner,
	entryRepo repository.TimeEntryRepository,
	assignmentRepo repository.AssignmentRepository,
	employeeRepo repository.EmployeeRepository,
	eventRepo repository.ApprovalEventRepository,
) *EntryUseCase {
	return &EntryUseCase{
		txRunner:       txRunner,
		entryRepo:      entryRepo,
		assignmentRepo: assignmentRepo,
		employeeRepo:   employeeRepo,
		eventRepo:      eventRepo,
	}
}

var validCategories = map[string]bool{
	entity.CategoryProject:        true,
	entity.CategoryTraining:       true,
	entity.CategoryAdministrative: true,
	entity.CategoryPTO:            true,
	entity.CategoryHoliday:        true,
}

var validTimeTypes = map[string]bool{
	entity.TimeTypeBillable: true,
	entity.TimeTypeHoliday:  true,
	entity.TimeTypeTimeOff:  true,
}

// CreateEntries registra tiempo para una o varias fechas. Un alta con varios
// días produce un registro por fecha, nunca uno que abarque varias. Todo el
// lote se persiste en una transacción: o entran todas las fechas o ninguna.
// Precondición dura: el empleado debe tener onboarding completo y acceso a
// hojas de tiempo; si no, se rechaza antes de persistir nada.
func (uc *EntryUseCase) CreateEntries(ctx context.Context, in dto.CreateTimeEntriesRequest) ([]dto.TimeEntryResponse, error) {
	if in.EmployeeID == "" || len(in.Dates) == 0 {
		return nil, domain.ErrInvalidInput
	}
	category := in.Category
	if category == "" {
		category = entity.CategoryProject
	}
	timeType := in.TimeType
	if timeType == "" {
		timeType = entity.TimeTypeBillable
	}
	if !validCategories[category] || !validTimeTypes[timeType] {
		return nil, domain.ErrInvalidInput
	}

	emp, err := uc.employeeRepo.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if !emp.TimesheetEligible() {
		return nil, domain.ErrTimesheetAccess
	}

	var assignment *entity.Assignment
	if in.Billable {
		if in.AssignmentID == "" {
			return nil, domain.ErrInvalidInput
		}
		assignment, err = uc.assignmentRepo.GetByID(ctx, in.AssignmentID)
		if err != nil {
			return nil, err
		}
		if assignment == nil {
			return nil, domain.ErrNotFound
		}
		if !assignment.Active {
			return nil, fmt.Errorf("asignación %s inactiva: %w", assignment.ID, domain.ErrInvalidInput)
		}
	}

	dates := make([]time.Time, 0, len(in.Dates))
	for _, d := range in.Dates {
		parsed, err := time.Parse(dto.DateLayout, d)
		if err != nil {
			return nil, fmt.Errorf("fecha %q: %w", d, domain.ErrInvalidInput)
		}
		dates = append(dates, domaints.Normalize(parsed))
	}

	now := time.Now()
	toCreate := make([]*entity.TimeEntry, 0, len(dates))
	weeks := make(map[time.Time]struct{})
	for _, date := range dates {
		weekEnding := domaints.WeekEnding(date)
		weeks[weekEnding] = struct{}{}

		// Compuerta de semana: solo draft o rejected admiten mutaciones.
		weekEntries, err := uc.entryRepo.ListByWeek(ctx, in.EmployeeID, weekEnding)
		if err != nil {
			return nil, err
		}
		if len(weekEntries) > 0 && !domaints.Editable(domaints.RollUpStatus(weekEntries)) {
			return nil, domain.ErrWeekLocked
		}

		e := &entity.TimeEntry{
			ID:                    uuid.New().String(),
			EmployeeID:            in.EmployeeID,
			Date:                  date,
			WeekEnding:            weekEnding,
			Billable:              in.Billable,
			Category:              category,
			TimeType:              timeType,
			RegularHours:          in.RegularHours,
			OvertimeHours:         in.OvertimeHours,
			HolidayHours:          in.HolidayHours,
			TimeOffHours:          in.TimeOffHours,
			OvertimeApprovalEmail: in.OvertimeApprovalEmail,
			Status:                entity.EntryStatusDraft,
			CreatedAt:             now,
			UpdatedAt:             now,
		}
		if assignment != nil {
			e.AssignmentID = assignment.ID
			e.ClientID = assignment.ClientID
			e.PONumber = assignment.PONumber
			e.BillingRate = assignment.BillingRate
			e.BillingType = assignment.BillingType
		}

		// Rango de horas: error duro, no excepción (inválido ni en draft).
		if hasKind(domaints.ValidateEntry(e, assignment), entity.ExceptionInvalidHours) {
			return nil, fmt.Errorf("horas del %s: %w", date.Format(dto.DateLayout), domain.ErrInvalidInput)
		}
		toCreate = append(toCreate, e)
	}

	err = uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, _ repository.ApprovalEventRepository) error {
		// Recheck bajo el candado: un envío concurrente pudo cerrar la
		// semana entre la lectura de la compuerta y esta transacción, y el
		// FOR UPDATE sobre filas existentes no frena un insert.
		for week := range weeks {
			locked, err := entries.ListByWeekForUpdate(ctx, in.EmployeeID, week)
			if err != nil {
				return err
			}
			if len(locked) > 0 && !domaints.Editable(domaints.RollUpStatus(locked)) {
				return domain.ErrWeekLocked
			}
		}
		for _, e := range toCreate {
			if err := entries.Create(ctx, e); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := make([]dto.TimeEntryResponse, 0, len(toCreate))
	for _, e := range toCreate {
		out = append(out, toEntryResponse(e, domaints.ValidateEntry(e, assignment)))
	}
	return out, nil
}

// UpdateEntry edita un registro. Solo semanas en draft o rejected admiten
// edición; editar un registro rechazado limpia comentario y fecha de rechazo
// y lo regresa a draft, obligando a reenviar la semana por las mismas
// compuertas.
func (uc *EntryUseCase) UpdateEntry(ctx context.Context, id string, actor entity.Actor, in dto.UpdateTimeEntryRequest) (*dto.TimeEntryResponse, error) {
	e, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.Status != entity.EntryStatusDraft && e.Status != entity.EntryStatusRejected {
		return nil, domain.ErrWeekLocked
	}
	weekEntries, err := uc.entryRepo.ListByWeek(ctx, e.EmployeeID, e.WeekEnding)
	if err != nil {
		return nil, err
	}
	if !domaints.Editable(domaints.RollUpStatus(weekEntries)) {
		return nil, domain.ErrWeekLocked
	}

	var assignment *entity.Assignment
	if in.Billable {
		assignmentID := in.AssignmentID
		if assignmentID == "" {
			assignmentID = e.AssignmentID
		}
		if assignmentID == "" {
			return nil, domain.ErrInvalidInput
		}
		assignment, err = uc.assignmentRepo.GetByID(ctx, assignmentID)
		if err != nil {
			return nil, err
		}
		if assignment == nil {
			return nil, domain.ErrNotFound
		}
	}

	prevStatus := e.Status
	wasRejected := e.Status == entity.EntryStatusRejected

	e.Billable = in.Billable
	if in.Category != "" {
		if !validCategories[in.Category] {
			return nil, domain.ErrInvalidInput
		}
		e.Category = in.Category
	}
	if in.TimeType != "" {
		if !validTimeTypes[in.TimeType] {
			return nil, domain.ErrInvalidInput
		}
		e.TimeType = in.TimeType
	}
	e.RegularHours = in.RegularHours
	e.OvertimeHours = in.OvertimeHours
	e.HolidayHours = in.HolidayHours
	e.TimeOffHours = in.TimeOffHours
	e.OvertimeApprovalEmail = in.OvertimeApprovalEmail
	if assignment != nil {
		e.AssignmentID = assignment.ID
		e.ClientID = assignment.ClientID
		e.PONumber = assignment.PONumber
		e.BillingRate = assignment.BillingRate
		e.BillingType = assignment.BillingType
	} else {
		e.AssignmentID = ""
		e.ClientID = ""
		e.PONumber = ""
		e.BillingRate = decimal.Zero
		e.BillingType = ""
	}
	e.UpdatedAt = time.Now()

	if hasKind(domaints.ValidateEntry(e, assignment), entity.ExceptionInvalidHours) {
		return nil, fmt.Errorf("horas del día: %w", domain.ErrInvalidInput)
	}

	if wasRejected {
		// rejected → draft es una transición del motor: limpia el rechazo y
		// queda en la pista de auditoría.
		e.ClearRejection()
		e.Status = entity.EntryStatusDraft
	}
	err = uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, events repository.ApprovalEventRepository) error {
		// Recheck bajo el candado: el registro y su semana deben seguir
		// editables al momento de escribir.
		locked, err := entries.ListByWeekForUpdate(ctx, e.EmployeeID, e.WeekEnding)
		if err != nil {
			return err
		}
		cur := findEntry(locked, e.ID)
		if cur == nil {
			return domain.ErrNotFound
		}
		if cur.Status != prevStatus {
			return domain.ErrConflict
		}
		if !domaints.Editable(domaints.RollUpStatus(locked)) {
			return domain.ErrWeekLocked
		}
		if err := entries.Update(ctx, e); err != nil {
			return err
		}
		if !wasRejected {
			return nil
		}
		return events.Create(ctx, &entity.ApprovalEvent{
			ID:         uuid.New().String(),
			EntryID:    e.ID,
			EmployeeID: e.EmployeeID,
			WeekEnding: e.WeekEnding,
			FromStatus: prevStatus,
			ToStatus:   entity.EntryStatusDraft,
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			CreatedAt:  time.Now(),
		})
	})
	if err != nil {
		return nil, err
	}

	resp := toEntryResponse(e, domaints.ValidateEntry(e, assignment))
	return &resp, nil
}

// DeleteEntry elimina un registro de una semana editable. Si era el último,
// la hoja de tiempo de esa semana deja de existir (nunca queda vacía).
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	e, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	weekEntries, err := uc.entryRepo.ListByWeek(ctx, e.EmployeeID, e.WeekEnding)
	if err != nil {
		return err
	}
	if !domaints.Editable(domaints.RollUpStatus(weekEntries)) {
		return domain.ErrWeekLocked
	}
	return uc.txRunner.Run(ctx, func(entries repository.TimeEntryRepository, _ repository.ApprovalEventRepository) error {
		// Recheck bajo el candado, como en las demás mutaciones.
		locked, err := entries.ListByWeekForUpdate(ctx, e.EmployeeID, e.WeekEnding)
		if err != nil {
			return err
		}
		if findEntry(locked, e.ID) == nil {
			return domain.ErrNotFound
		}
		if !domaints.Editable(domaints.RollUpStatus(locked)) {
			return domain.ErrWeekLocked
		}
		return entries.Delete(ctx, id)
	})
}

// GetWeek arma la hoja de tiempo de (empleado, semana) con totales, roll-up y
// excepciones recalculadas al momento de la lectura.
func (uc *EntryUseCase) GetWeek(ctx context.Context, employeeID string, weekEnding time.Time) (*dto.TimesheetResponse, error) {
	entries, err := uc.entryRepo.ListByWeek(ctx, employeeID, domaints.WeekEnding(weekEnding))
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, domain.ErrNotFound
	}
	ts := domaints.BuildTimesheet(employeeID, domaints.WeekEnding(weekEnding), entries)
	exceptions, err := uc.validateAll(ctx, entries)
	if err != nil {
		return nil, err
	}
	return toTimesheetResponse(ts, exceptions), nil
}

// ListEvents pista de auditoría de un registro.
func (uc *EntryUseCase) ListEvents(ctx context.Context, entryID string) ([]dto.ApprovalEventResponse, error) {
	e, err := uc.entryRepo.GetByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	events, err := uc.eventRepo.ListByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ApprovalEventResponse, 0, len(events))
	for _, ev := range events {
		out = append(out, toEventResponse(ev))
	}
	return out, nil
}

// validateAll valida cada registro con su asignación (cacheada por ID).
func (uc *EntryUseCase) validateAll(ctx context.Context, entries []*entity.TimeEntry) (map[string][]entity.Exception, error) {
	cache := map[string]*entity.Assignment{}
	out := map[string][]entity.Exception{}
	for _, e := range entries {
		var asg *entity.Assignment
		if e.Billable && e.AssignmentID != "" {
			var ok bool
			asg, ok = cache[e.AssignmentID]
			if !ok {
				var err error
				asg, err = uc.assignmentRepo.GetByID(ctx, e.AssignmentID)
				if err != nil {
					return nil, err
				}
				cache[e.AssignmentID] = asg
			}
		}
		if excs := domaints.ValidateEntry(e, asg); len(excs) > 0 {
			out[e.ID] = excs
		}
	}
	return out, nil
}

func hasKind(excs []entity.Exception, kind string) bool {
	for _, ex := range excs {
		if ex.Kind == kind {
			return true
		}
	}
	return false
}
