package timesheet

import (
	"context"

	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
	domaints "github.com/talento-hr/talento-api/internal/domain/timesheet"
)

// QueueUseCase colas de aprobación derivadas. No hay tabla de colas: cada
// cola es una consulta por estado vivo, así un registro que avanza o se
// rechaza sale de la cola en la siguiente lectura sin mantenimiento alguno.
type QueueUseCase struct {
	entryRepo    repository.TimeEntryRepository
	employeeRepo repository.EmployeeRepository
}

// NewQueueUseCase construye el caso de uso.
func NewQueueUseCase(entryRepo repository.TimeEntryRepository, employeeRepo repository.EmployeeRepository) *QueueUseCase {
	return &QueueUseCase{entryRepo: entryRepo, employeeRepo: employeeRepo}
}

// ListClientQueue registros esperando visto bueno del cliente.
func (uc *QueueUseCase) ListClientQueue(ctx context.Context) ([]dto.QueueItemResponse, error) {
	return uc.list(ctx, domaints.ClientQueueStatuses)
}

// ListAccountingQueue registros en cualquier etapa que revisa contabilidad.
func (uc *QueueUseCase) ListAccountingQueue(ctx context.Context) ([]dto.QueueItemResponse, error) {
	return uc.list(ctx, domaints.AccountingQueueStatuses)
}

func (uc *QueueUseCase) list(ctx context.Context, statuses []entity.EntryStatus) ([]dto.QueueItemResponse, error) {
	entries, err := uc.entryRepo.ListByStatus(ctx, statuses...)
	if err != nil {
		return nil, err
	}
	names := map[string]string{}
	out := make([]dto.QueueItemResponse, 0, len(entries))
	for _, e := range entries {
		item := toQueueItem(e)
		name, ok := names[e.EmployeeID]
		if !ok {
			emp, err := uc.employeeRepo.GetByID(ctx, e.EmployeeID)
			if err != nil {
				return nil, err
			}
			if emp != nil {
				name = emp.FullName()
			}
			names[e.EmployeeID] = name
		}
		item.EmployeeName = name
		out = append(out, item)
	}
	return out, nil
}
