package repository

import (
	"context"

	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// ExpenseRepository puerto de persistencia para Expense.
type ExpenseRepository interface {
	Create(ctx context.Context, e *entity.Expense) error
	Update(ctx context.Context, e *entity.Expense) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*entity.Expense, error)
	ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]*entity.Expense, error)
}
