package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

var _ repository.AssignmentRepository = (*AssignmentRepo)(nil)

const assignmentColumns = `id, employee_id, client_id, vendor_id, po_number, po_limit, po_utilized, po_remaining,
	billing_rate, billing_type, requires_client_approval, work_location, active,
	start_date, end_date, created_at, updated_at`

// AssignmentRepo implementación de AssignmentRepository sobre PostgreSQL.
type AssignmentRepo struct {
	q Querier
}

// NewAssignmentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewAssignmentRepository(q Querier) *AssignmentRepo {
	return &AssignmentRepo{q: q}
}

// Create persiste una asignación.
func (r *AssignmentRepo) Create(ctx context.Context, a *entity.Assignment) error {
	query := `
		INSERT INTO assignments (` + assignmentColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, query,
		a.ID, a.EmployeeID, a.ClientID, nullIfEmpty(a.VendorID),
		nullIfEmpty(a.PONumber), a.POLimit, a.POUtilized, a.PORemaining,
		a.BillingRate, a.BillingType, a.RequiresClientApproval, nullIfEmpty(a.WorkLocation), a.Active,
		a.StartDate, a.EndDate, a.CreatedAt, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// Update reescribe la asignación, incluido el consumo de la PO.
func (r *AssignmentRepo) Update(ctx context.Context, a *entity.Assignment) error {
	query := `
		UPDATE assignments SET
			po_number = $2, po_limit = $3, po_utilized = $4, po_remaining = $5,
			billing_rate = $6, billing_type = $7, requires_client_approval = $8,
			work_location = $9, active = $10, end_date = $11, updated_at = $12
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		a.ID, nullIfEmpty(a.PONumber), a.POLimit, a.POUtilized, a.PORemaining,
		a.BillingRate, a.BillingType, a.RequiresClientApproval,
		nullIfEmpty(a.WorkLocation), a.Active, a.EndDate, a.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update assignment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update assignment %s: no existe", a.ID)
	}
	return nil
}

// GetByID obtiene una asignación por ID; nil si no existe.
func (r *AssignmentRepo) GetByID(ctx context.Context, id string) (*entity.Assignment, error) {
	query := `SELECT ` + assignmentColumns + ` FROM assignments WHERE id = $1`
	a, err := scanAssignment(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get assignment: %w", err)
	}
	return a, nil
}

// ListByEmployee asignaciones de un empleado.
func (r *AssignmentRepo) ListByEmployee(ctx context.Context, employeeID string) ([]*entity.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE employee_id = $1
		ORDER BY start_date DESC`
	return r.list(ctx, query, employeeID)
}

// List asignaciones con paginación.
func (r *AssignmentRepo) List(ctx context.Context, limit, offset int) ([]*entity.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`
	return r.list(ctx, query, limit, offset)
}

func (r *AssignmentRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Assignment, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []*entity.Assignment
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanAssignment(row pgx.Row) (*entity.Assignment, error) {
	var a entity.Assignment
	var vendorID, poNumber, workLocation *string
	err := row.Scan(
		&a.ID, &a.EmployeeID, &a.ClientID, &vendorID, &poNumber,
		&a.POLimit, &a.POUtilized, &a.PORemaining,
		&a.BillingRate, &a.BillingType, &a.RequiresClientApproval, &workLocation, &a.Active,
		&a.StartDate, &a.EndDate, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.VendorID = deref(vendorID)
	a.PONumber = deref(poNumber)
	a.WorkLocation = deref(workLocation)
	return &a, nil
}
