package repository

import (
	"context"

	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// UserRepository puerto de persistencia para cuentas de acceso.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	Update(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
