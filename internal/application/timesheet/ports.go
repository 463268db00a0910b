package timesheet

import (
	"context"

	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Es la garantía de atomicidad del motor de
// aprobación: las transiciones por lote (enviar/aprobar/rechazar una semana)
// mueven todos los registros o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		entries repository.TimeEntryRepository,
		events repository.ApprovalEventRepository,
	) error) error
}

// WeekPDFGenerator genera la representación imprimible de una hoja de tiempo
// semanal para descarga desde la UI.
type WeekPDFGenerator interface {
	GenerateWeekPDF(ctx context.Context, employee *entity.Employee, ts *entity.Timesheet, exceptions map[string][]entity.Exception) ([]byte, error)
}
