package postgres

import (
	"context"
	"fmt"

	"github.com/talento-hr/talento-api/internal/domain/entity"
	"github.com/talento-hr/talento-api/internal/domain/repository"
)

var _ repository.ApprovalEventRepository = (*ApprovalEventRepo)(nil)

// ApprovalEventRepo pista de auditoría del motor de aprobación. Tabla
// append-only: nunca se actualiza ni se borra.
type ApprovalEventRepo struct {
	q Querier
}

// NewApprovalEventRepository construye el adaptador. Pasar pool o tx (Querier).
func NewApprovalEventRepository(q Querier) *ApprovalEventRepo {
	return &ApprovalEventRepo{q: q}
}

// Create persiste un evento de transición.
func (r *ApprovalEventRepo) Create(ctx context.Context, ev *entity.ApprovalEvent) error {
	query := `
		INSERT INTO approval_events (id, entry_id, employee_id, week_ending, from_status, to_status, actor_id, actor_role, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(ctx, query,
		ev.ID, ev.EntryID, ev.EmployeeID, ev.WeekEnding,
		ev.FromStatus, ev.ToStatus, ev.ActorID, ev.ActorRole,
		nullIfEmpty(ev.Comment), ev.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert approval event: %w", err)
	}
	return nil
}

// ListByEntry eventos de un registro en orden cronológico.
func (r *ApprovalEventRepo) ListByEntry(ctx context.Context, entryID string) ([]*entity.ApprovalEvent, error) {
	query := `
		SELECT id, entry_id, employee_id, week_ending, from_status, to_status, actor_id, actor_role, comment, created_at
		FROM approval_events
		WHERE entry_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("list approval events: %w", err)
	}
	defer rows.Close()

	var out []*entity.ApprovalEvent
	for rows.Next() {
		var ev entity.ApprovalEvent
		var comment *string
		err := rows.Scan(
			&ev.ID, &ev.EntryID, &ev.EmployeeID, &ev.WeekEnding,
			&ev.FromStatus, &ev.ToStatus, &ev.ActorID, &ev.ActorRole,
			&comment, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan approval event: %w", err)
		}
		ev.Comment = deref(comment)
		out = append(out, &ev)
	}
	return out, rows.Err()
}
