package repository

import (
	"context"

	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// AssignmentRepository registro de asignaciones empleado↔cliente↔PO. El motor
// de hojas de tiempo lo consulta en modo lectura; los campos de la PO los
// mantiene el módulo de facturación.
type AssignmentRepository interface {
	Create(ctx context.Context, a *entity.Assignment) error
	Update(ctx context.Context, a *entity.Assignment) error
	GetByID(ctx context.Context, id string) (*entity.Assignment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Assignment, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Assignment, error)
}
