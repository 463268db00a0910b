package entity

import "time"

// Roles de actor dentro del flujo de aprobación.
const (
	RoleEmployee       = "employee"
	RoleClientApprover = "client_approver"
	RoleAccounting     = "accounting"
	RoleAdmin          = "admin"
)

// Actor quien ejecuta una acción del flujo (envío, aprobación, rechazo).
type Actor struct {
	ID   string
	Role string
}

// ApprovalEvent registro inmutable de una transición de estado. Forma la
// pista de auditoría: permite reconstruir por qué un registro quedó en
// rejected y quién lo movió en cada etapa.
type ApprovalEvent struct {
	ID         string
	EntryID    string
	EmployeeID string
	WeekEnding time.Time
	FromStatus EntryStatus
	ToStatus   EntryStatus
	ActorID    string
	ActorRole  string
	Comment    string
	CreatedAt  time.Time
}
