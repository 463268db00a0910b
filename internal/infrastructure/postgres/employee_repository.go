package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talento-hr/talento-api/internal/domain"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

const employeeColumns = `id, first_name, last_name, email, phone, title, department, client_id,
	onboarding_status, can_access_timesheets, hire_date, terminate_date, created_at, updated_at`

// EmployeeRepo implementación de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

// Create persiste una ficha de empleado.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, e.Email, nullIfEmpty(e.Phone),
		nullIfEmpty(e.Title), nullIfEmpty(e.Department), nullIfEmpty(e.ClientID),
		e.OnboardingStatus, e.CanAccessTimesheets, e.HireDate, e.TerminateDate,
		e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert employee: %w", err)
	}
	return nil
}

// Update reescribe la ficha.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE employees SET
			first_name = $2, last_name = $3, phone = $4, title = $5, department = $6,
			client_id = $7, onboarding_status = $8, can_access_timesheets = $9,
			terminate_date = $10, updated_at = $11
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, nullIfEmpty(e.Phone), nullIfEmpty(e.Title),
		nullIfEmpty(e.Department), nullIfEmpty(e.ClientID), e.OnboardingStatus,
		e.CanAccessTimesheets, e.TerminateDate, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update employee %s: no existe", e.ID)
	}
	return nil
}

// GetByID obtiene una ficha por ID; nil si no existe.
func (r *EmployeeRepo) GetByID(ctx context.Context, id string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`
	return r.get(ctx, query, id)
}

// GetByEmail obtiene una ficha por email; nil si no existe.
func (r *EmployeeRepo) GetByEmail(ctx context.Context, email string) (*entity.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE email = $1`
	return r.get(ctx, query, email)
}

// List fichas con paginación, por apellido.
func (r *EmployeeRepo) List(ctx context.Context, limit, offset int) ([]*entity.Employee, error) {
	query := `
		SELECT ` + employeeColumns + `
		FROM employees
		ORDER BY last_name, first_name
		LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []*entity.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan employee: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepo) get(ctx context.Context, query string, arg any) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var phone, title, department, clientID *string
	err := row.Scan(
		&e.ID, &e.FirstName, &e.LastName, &e.Email, &phone, &title, &department, &clientID,
		&e.OnboardingStatus, &e.CanAccessTimesheets, &e.HireDate, &e.TerminateDate,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Phone = deref(phone)
	e.Title = deref(title)
	e.Department = deref(department)
	e.ClientID = deref(clientID)
	return &e, nil
}
