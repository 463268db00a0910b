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

// AssignmentUseCase asignaciones empleado↔cliente con su PO. La PO nace con
// el límite completo disponible; el consumo lo registra facturación.
type AssignmentUseCase struct {
	repo         repository.AssignmentRepository
	employeeRepo repository.EmployeeRepository
	clientRepo   repository.ClientRepository
}

// NewAssignmentUseCase construye el caso de uso.
func NewAssignmentUseCase(
	repo repository.AssignmentRepository,
	employeeRepo repository.EmployeeRepository,
	clientRepo repository.ClientRepository,
) *AssignmentUseCase {
	return &AssignmentUseCase{repo: repo, employeeRepo: employeeRepo, clientRepo: clientRepo}
}

// Create da de alta una asignación. Empleado y cliente deben existir.
func (uc *AssignmentUseCase) Create(ctx context.Context, in dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	if in.EmployeeID == "" || in.ClientID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.BillingType {
	case entity.BillingTypeHourly, entity.BillingTypeDaily:
	default:
		return nil, domain.ErrInvalidInput
	}
	emp, err := uc.employeeRepo.GetByID(ctx, in.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	cli, err := uc.clientRepo.GetByID(ctx, in.ClientID)
	if err != nil {
		return nil, err
	}
	if cli == nil {
		return nil, domain.ErrNotFound
	}
	startDate := time.Now()
	if in.StartDate != "" {
		startDate, err = time.Parse(dto.DateLayout, in.StartDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	a := &entity.Assignment{
		ID:                     uuid.New().String(),
		EmployeeID:             in.EmployeeID,
		ClientID:               in.ClientID,
		VendorID:               in.VendorID,
		PONumber:               in.PONumber,
		POLimit:                in.POLimit,
		PORemaining:            in.POLimit,
		BillingRate:            in.BillingRate,
		BillingType:            in.BillingType,
		RequiresClientApproval: in.RequiresClientApproval,
		WorkLocation:           in.WorkLocation,
		Active:                 true,
		StartDate:              startDate,
		CreatedAt:              now,
		UpdatedAt:              now,
	}
	if err := uc.repo.Create(ctx, a); err != nil {
		return nil, err
	}
	return entityToAssignmentResponse(a), nil
}

// GetByID obtiene una asignación por ID.
func (uc *AssignmentUseCase) GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return entityToAssignmentResponse(a), nil
}

// ListByEmployee asignaciones de un empleado.
func (uc *AssignmentUseCase) ListByEmployee(ctx context.Context, employeeID string) ([]dto.AssignmentResponse, error) {
	list, err := uc.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToAssignmentResponse(a))
	}
	return items, nil
}

// List lista asignaciones con paginación.
func (uc *AssignmentUseCase) List(ctx context.Context, limit, offset int) ([]dto.AssignmentResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.AssignmentResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *entityToAssignmentResponse(a))
	}
	return items, nil
}

// Deactivate cierra la asignación: los registros billable nuevos dejan de
// poder colgarse de ella.
func (uc *AssignmentUseCase) Deactivate(ctx context.Context, id string) (*dto.AssignmentResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	a.Active = false
	a.EndDate = &now
	a.UpdatedAt = now
	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return entityToAssignmentResponse(a), nil
}

func entityToAssignmentResponse(a *entity.Assignment) *dto.AssignmentResponse {
	if a == nil {
		return nil
	}
	return &dto.AssignmentResponse{
		ID:                     a.ID,
		EmployeeID:             a.EmployeeID,
		ClientID:               a.ClientID,
		VendorID:               a.VendorID,
		PONumber:               a.PONumber,
		POLimit:                a.POLimit,
		POUtilized:             a.POUtilized,
		PORemaining:            a.PORemaining,
		BillingRate:            a.BillingRate,
		BillingType:            a.BillingType,
		RequiresClientApproval: a.RequiresClientApproval,
		WorkLocation:           a.WorkLocation,
		Active:                 a.Active,
		StartDate:              a.StartDate.Format(dto.DateLayout),
	}
}
