package repository

import (
	"context"
	"time"

	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// TimeEntryRepository define el puerto de persistencia para TimeEntry.
type TimeEntryRepository interface {
	Create(ctx context.Context, e *entity.TimeEntry) error
	Update(ctx context.Context, e *entity.TimeEntry) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.TimeEntry, error)
	// ListByWeek devuelve los registros de la hoja (employeeID, weekEnding)
	// ordenados por fecha.
	ListByWeek(ctx context.Context, employeeID string, weekEnding time.Time) ([]*entity.TimeEntry, error)
	// ListByWeekForUpdate bloquea las filas de la semana (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción: es el candado que
	// serializa las operaciones por (empleado, semana).
	ListByWeekForUpdate(ctx context.Context, employeeID string, weekEnding time.Time) ([]*entity.TimeEntry, error)
	// ListByStatus escanea los registros en cualquiera de los estados dados
	// (deriva las colas de aprobación; no hay colas almacenadas).
	ListByStatus(ctx context.Context, statuses ...entity.EntryStatus) ([]*entity.TimeEntry, error)
	// UpdateStatus persiste estado + campos de rechazo de un registro.
	UpdateStatus(ctx context.Context, e *entity.TimeEntry) error
}
