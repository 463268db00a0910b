package repository

import (
	"context"

	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// EmployeeRepository directorio de empleados.
type EmployeeRepository interface {
	Create(ctx context.Context, e *entity.Employee) error
	Update(ctx context.Context, e *entity.Employee) error
	GetByID(ctx context.Context, id string) (*entity.Employee, error)
	GetByEmail(ctx context.Context, email string) (*entity.Employee, error)
	List(ctx context.Context, limit, offset int) ([]*entity.Employee, error)
}
