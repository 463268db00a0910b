package repository

import (
	"context"

	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// ApprovalEventRepository puerto para la pista de auditoría (append-only).
type ApprovalEventRepository interface {
	Create(ctx context.Context, ev *entity.ApprovalEvent) error
	ListByEntry(ctx context.Context, entryID string) ([]*entity.ApprovalEvent, error)
}
