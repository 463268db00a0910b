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

// EmployeeUseCase directorio de empleados: altas, onboarding y baja. El
// acceso a hojas de tiempo se concede al completar el onboarding y se revoca
// en la baja; el motor de tiempo consulta esa bandera como precondición dura.
type EmployeeUseCase struct {
	repo repository.EmployeeRepository
}

// NewEmployeeUseCase construye el caso de uso con el puerto de persistencia.
func NewEmployeeUseCase(repo repository.EmployeeRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo}
}

// Create da de alta la ficha. Nace con onboarding pendiente y sin acceso a
// hojas de tiempo. Devuelve domain.ErrDuplicate si el email ya existe.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	if in.FirstName == "" || in.LastName == "" || in.Email == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(ctx, in.Email)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	hireDate := time.Now()
	if in.HireDate != "" {
		var err error
		hireDate, err = time.Parse(dto.DateLayout, in.HireDate)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
	}
	now := time.Now()
	emp := &entity.Employee{
		ID:                  uuid.New().String(),
		FirstName:           in.FirstName,
		LastName:            in.LastName,
		Email:               in.Email,
		Phone:               in.Phone,
		Title:               in.Title,
		Department:          in.Department,
		ClientID:            in.ClientID,
		OnboardingStatus:    entity.OnboardingPending,
		CanAccessTimesheets: false,
		HireDate:            hireDate,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if err := uc.repo.Create(ctx, emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// GetByID obtiene una ficha por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	return entityToEmployeeResponse(emp), nil
}

// List lista fichas con paginación.
func (uc *EmployeeUseCase) List(ctx context.Context, limit, offset int) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		items = append(items, *entityToEmployeeResponse(e))
	}
	return items, nil
}

// Update actualiza datos de contacto y asignación de la ficha.
func (uc *EmployeeUseCase) Update(ctx context.Context, id string, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if in.FirstName != "" {
		emp.FirstName = in.FirstName
	}
	if in.LastName != "" {
		emp.LastName = in.LastName
	}
	emp.Phone = in.Phone
	emp.Title = in.Title
	emp.Department = in.Department
	emp.ClientID = in.ClientID
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// StartOnboarding marca el onboarding en curso.
func (uc *EmployeeUseCase) StartOnboarding(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	return uc.setOnboarding(ctx, id, entity.OnboardingPending, entity.OnboardingInProgress, false)
}

// CompleteOnboarding cierra el onboarding y habilita las hojas de tiempo.
func (uc *EmployeeUseCase) CompleteOnboarding(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	return uc.setOnboarding(ctx, id, entity.OnboardingInProgress, entity.OnboardingCompleted, true)
}

// Offboard da de baja: revoca el acceso a hojas de tiempo y sella la fecha.
func (uc *EmployeeUseCase) Offboard(ctx context.Context, id string) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	emp.OnboardingStatus = entity.OnboardingOffboarded
	emp.CanAccessTimesheets = false
	emp.TerminateDate = &now
	emp.UpdatedAt = now
	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

// HasTimesheetAccess responde si el empleado puede registrar tiempo. Lo usa
// el middleware del módulo de hojas de tiempo.
func (uc *EmployeeUseCase) HasTimesheetAccess(ctx context.Context, employeeID string) (bool, error) {
	emp, err := uc.repo.GetByID(ctx, employeeID)
	if err != nil {
		return false, err
	}
	if emp == nil {
		return false, nil
	}
	return emp.TimesheetEligible(), nil
}

func (uc *EmployeeUseCase) setOnboarding(ctx context.Context, id, from, to string, grantAccess bool) (*dto.EmployeeResponse, error) {
	emp, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if emp == nil {
		return nil, domain.ErrNotFound
	}
	if emp.OnboardingStatus != from {
		return nil, domain.ErrInvalidTransition
	}
	emp.OnboardingStatus = to
	if grantAccess {
		emp.CanAccessTimesheets = true
	}
	emp.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, emp); err != nil {
		return nil, err
	}
	return entityToEmployeeResponse(emp), nil
}

func entityToEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeeResponse{
		ID:                  e.ID,
		FirstName:           e.FirstName,
		LastName:            e.LastName,
		Email:               e.Email,
		Phone:               e.Phone,
		Title:               e.Title,
		Department:          e.Department,
		ClientID:            e.ClientID,
		OnboardingStatus:    e.OnboardingStatus,
		CanAccessTimesheets: e.CanAccessTimesheets,
		HireDate:            e.HireDate.Format(dto.DateLayout),
		TerminateDate:       e.TerminateDate,
	}
}
