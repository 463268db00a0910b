package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

// ExpenseUseCase gastos reembolsables. Ciclo de vida simple e independiente
// del motor de hojas de tiempo: draft → submitted → approved | rejected.
type ExpenseUseCase struct {
	repo         repository.ExpenseRepository
	employeeRepo repository.EmployeeRepository
}

// NewExpenseUseCase construye el caso de uso.
func NewExpenseUseCase(repo repository.ExpenseRepository, employeeRepo repository.EmployeeRepository) *ExpenseUseCase {
	return &ExpenseUseCase{repo: repo, employeeRepo: employeeRepo}
}

var validExpenseCategories = map[string]bool{
	entity.ExpenseCategoryTravel:   true,
	entity.ExpenseCategoryMeals:    true,
	entity.ExpenseCategorySupplies: true,
	entity.ExpenseCategoryOther:    true,
}

// Create registra un gasto en draft.
func (uc *ExpenseUseCase) Create(ctx context.Context, in dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	if in.EmployeeID == "" || !validExpenseCategories[in.Category] || !in.Amount.IsPositive() {
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.employeeRepo.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	date, err := time.Parse(dto.DateLayout, in.Date)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	e := &entity.Expense{
		ID:          uuid.New().String(),
		EmployeeID:  in.EmployeeID,
		Date:        date,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		ReceiptURL:  in.ReceiptURL,
		Status:      entity.ExpenseStatusDraft,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return entityToExpenseResponse(e), nil
}

// GetByID obtiene un gasto por ID.
func (uc *ExpenseUseCase) GetByID(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return entityToExpenseResponse(e), nil
}

// ListByEmployee gastos de un empleado con paginación.
func (uc *ExpenseUseCase) ListByEmployee(ctx context.Context, employeeID string, limit, offset int) ([]dto.ExpenseResponse, error) {
	list, err := uc.repo.ListByEmployee(ctx, employeeID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ExpenseResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToExpenseResponse(e))
	}
	return items, nil
}

// Submit envía el gasto a revisión.
func (uc *ExpenseUseCase) Submit(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	return uc.transition(ctx, id, entity.ExpenseStatusDraft, entity.ExpenseStatusSubmitted)
}

// Approve aprueba un gasto enviado.
func (uc *ExpenseUseCase) Approve(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	return uc.transition(ctx, id, entity.ExpenseStatusSubmitted, entity.ExpenseStatusApproved)
}

// Reject rechaza un gasto enviado.
func (uc *ExpenseUseCase) Reject(ctx context.Context, id string) (*dto.ExpenseResponse, error) {
	return uc.transition(ctx, id, entity.ExpenseStatusSubmitted, entity.ExpenseStatusRejected)
}

// Delete elimina un gasto en draft.
func (uc *ExpenseUseCase) Delete(ctx context.Context, id string) error {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return domain.ErrNotFound
	}
	if e.Status != entity.ExpenseStatusDraft {
		return domain.ErrInvalidTransition
	}
	return uc.repo.Delete(ctx, id)
}

func (uc *ExpenseUseCase) transition(ctx context.Context, id, from, to string) (*dto.ExpenseResponse, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	if e.Status != from {
		return nil, domain.ErrInvalidTransition
	}
	e.Status = to
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return entityToExpenseResponse(e), nil
}

func entityToExpenseResponse(e *entity.Expense) *dto.ExpenseResponse {
	if e == nil {
		return nil
	}
	return &dto.ExpenseResponse{
		ID:          e.ID,
		EmployeeID:  e.EmployeeID,
		Date:        e.Date.Format(dto.DateLayout),
		Category:    e.Category,
		Amount:      e.Amount,
		Description: e.Description,
		ReceiptURL:  e.ReceiptURL,
		Status:      e.Status,
	}
}
