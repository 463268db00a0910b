package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

var _ repository.TimeEntryRepository = (*TimeEntryRepo)(nil)

const timeEntryColumns = `id, employee_id, date, week_ending, billable, category, time_type,
	regular_hours, overtime_hours, holiday_hours, time_off_hours, overtime_approval_email,
	assignment_id, client_id, po_number, billing_rate, billing_type,
	status, rejection_comment, rejected_at, created_at, updated_at`

// TimeEntryRepo implementación de TimeEntryRepository sobre PostgreSQL (usable con pool o tx).
type TimeEntryRepo struct {
	q Querier
}

// NewTimeEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTimeEntryRepository(q Querier) *TimeEntryRepo {
	return &TimeEntryRepo{q: q}
}

// Create persiste un registro de tiempo.
func (r *TimeEntryRepo) Create(ctx context.Context, e *entity.TimeEntry) error {
	query := `
		INSERT INTO time_entries (` + timeEntryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`
	_, err := r.q.Exec(ctx, query,
		e.ID, e.EmployeeID, e.Date, e.WeekEnding, e.Billable, e.Category, e.TimeType,
		e.RegularHours, e.OvertimeHours, e.HolidayHours, e.TimeOffHours, nullIfEmpty(e.OvertimeApprovalEmail),
		nullIfEmpty(e.AssignmentID), nullIfEmpty(e.ClientID), nullIfEmpty(e.PONumber), e.BillingRate, nullIfEmpty(e.BillingType),
		e.Status, nullIfEmpty(e.RejectionComment), e.RejectedAt, e.CreatedAt, e.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("insert time entry %s: registro duplicado", e.ID)
		}
		return fmt.Errorf("insert time entry: %w", err)
	}
	return nil
}

// Update reescribe el registro completo.
func (r *TimeEntryRepo) Update(ctx context.Context, e *entity.TimeEntry) error {
	query := `
		UPDATE time_entries SET
			date = $2, week_ending = $3, billable = $4, category = $5, time_type = $6,
			regular_hours = $7, overtime_hours = $8, holiday_hours = $9, time_off_hours = $10,
			overtime_approval_email = $11, assignment_id = $12, client_id = $13, po_number = $14,
			billing_rate = $15, billing_type = $16, status = $17, rejection_comment = $18,
			rejected_at = $19, updated_at = $20
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.Date, e.WeekEnding, e.Billable, e.Category, e.TimeType,
		e.RegularHours, e.OvertimeHours, e.HolidayHours, e.TimeOffHours,
		nullIfEmpty(e.OvertimeApprovalEmail), nullIfEmpty(e.AssignmentID), nullIfEmpty(e.ClientID), nullIfEmpty(e.PONumber),
		e.BillingRate, nullIfEmpty(e.BillingType), e.Status, nullIfEmpty(e.RejectionComment),
		e.RejectedAt, e.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update time entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update time entry %s: no existe", e.ID)
	}
	return nil
}

// Delete elimina un registro.
func (r *TimeEntryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM time_entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete time entry: %w", err)
	}
	return nil
}

// GetByID obtiene un registro por ID; nil si no existe.
func (r *TimeEntryRepo) GetByID(ctx context.Context, id string) (*entity.TimeEntry, error) {
	query := `SELECT ` + timeEntryColumns + ` FROM time_entries WHERE id = $1`
	e, err := scanTimeEntry(r.q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get time entry: %w", err)
	}
	return e, nil
}

// ListByWeek registros de la hoja (empleado, semana), por fecha ascendente.
func (r *TimeEntryRepo) ListByWeek(ctx context.Context, employeeID string, weekEnding time.Time) ([]*entity.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND week_ending = $2
		ORDER BY date, id`
	return r.list(ctx, query, employeeID, weekEnding)
}

// ListByWeekForUpdate igual que ListByWeek pero bloqueando las filas
// (SELECT FOR UPDATE). Es el candado que serializa las operaciones del motor
// por (empleado, semana); solo tiene sentido dentro de una transacción.
func (r *TimeEntryRepo) ListByWeekForUpdate(ctx context.Context, employeeID string, weekEnding time.Time) ([]*entity.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE employee_id = $1 AND week_ending = $2
		ORDER BY date, id
		FOR UPDATE`
	return r.list(ctx, query, employeeID, weekEnding)
}

// ListByStatus registros en cualquiera de los estados dados. Deriva las colas
// de aprobación.
func (r *TimeEntryRepo) ListByStatus(ctx context.Context, statuses ...entity.EntryStatus) ([]*entity.TimeEntry, error) {
	query := `
		SELECT ` + timeEntryColumns + `
		FROM time_entries
		WHERE status = ANY($1)
		ORDER BY week_ending, employee_id, date`
	ss := make([]string, 0, len(statuses))
	for _, s := range statuses {
		ss = append(ss, string(s))
	}
	return r.list(ctx, query, ss)
}

// UpdateStatus persiste estado y campos de rechazo.
func (r *TimeEntryRepo) UpdateStatus(ctx context.Context, e *entity.TimeEntry) error {
	query := `
		UPDATE time_entries
		SET status = $2, rejection_comment = $3, rejected_at = $4, updated_at = $5
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, e.ID, e.Status, nullIfEmpty(e.RejectionComment), e.RejectedAt, e.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update time entry status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update time entry status %s: no existe", e.ID)
	}
	return nil
}

func (r *TimeEntryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.TimeEntry, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list time entries: %w", err)
	}
	defer rows.Close()

	var out []*entity.TimeEntry
	for rows.Next() {
		e, err := scanTimeEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan time entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func scanTimeEntry(row pgx.Row) (*entity.TimeEntry, error) {
	var e entity.TimeEntry
	var otEmail, assignmentID, clientID, poNumber, billingType, rejectionComment *string
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.Date, &e.WeekEnding, &e.Billable, &e.Category, &e.TimeType,
		&e.RegularHours, &e.OvertimeHours, &e.HolidayHours, &e.TimeOffHours, &otEmail,
		&assignmentID, &clientID, &poNumber, &e.BillingRate, &billingType,
		&e.Status, &rejectionComment, &e.RejectedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.OvertimeApprovalEmail = deref(otEmail)
	e.AssignmentID = deref(assignmentID)
	e.ClientID = deref(clientID)
	e.PONumber = deref(poNumber)
	e.BillingType = deref(billingType)
	e.RejectionComment = deref(rejectionComment)
	return &e, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
