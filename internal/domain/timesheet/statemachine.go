package timesheet

import (
	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// transitions tabla cerrada de transiciones legales por registro. Cualquier
// cambio de estado que no figure aquí se rechaza, sin importar quién lo pida.
var transitions = map[entity.EntryStatus][]entity.EntryStatus{
	entity.EntryStatusDraft: {
		entity.EntryStatusSubmitted,
		entity.EntryStatusRejected,
	},
	entity.EntryStatusSubmitted: {
		entity.EntryStatusPendingReview,
		entity.EntryStatusPendingClient,
		entity.EntryStatusPendingAccounting,
		entity.EntryStatusRejected,
	},
	entity.EntryStatusPendingReview: {
		entity.EntryStatusPendingClient,
		entity.EntryStatusPendingAccounting,
		entity.EntryStatusRejected,
	},
	entity.EntryStatusPendingClient: {
		entity.EntryStatusPendingAccounting,
		entity.EntryStatusRejected,
	},
	entity.EntryStatusPendingAccounting: {
		entity.EntryStatusApproved,
		entity.EntryStatusRejected,
	},
	entity.EntryStatusRejected: {
		entity.EntryStatusDraft, // implícito al editar
	},
	entity.EntryStatusApproved: {
		entity.EntryStatusInvoiced, // lo estampa facturación; aquí solo se lee
	},
	entity.EntryStatusInvoiced: {}, // terminal
}

// CanTransition consulta la tabla de transiciones.
func CanTransition(from, to entity.EntryStatus) bool {
	for _, t := range transitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// NextOnApprove calcula el estado al que avanza un registro cuando su revisor
// lo aprueba. El ruteo depende del registro y su asignación:
//   - submitted/pending_review: billable con asignación que exige visto bueno
//     del cliente → pending_client_approval; el resto salta directo a
//     pending_accounting_approval.
//   - pending_client_approval → pending_accounting_approval.
//   - pending_accounting_approval → approved.
//
// ok=false cuando el estado actual no admite aprobación.
func NextOnApprove(e *entity.TimeEntry, assignment *entity.Assignment) (entity.EntryStatus, bool) {
	switch e.Status {
	case entity.EntryStatusSubmitted, entity.EntryStatusPendingReview:
		if e.Billable && assignment != nil && assignment.RequiresClientApproval {
			return entity.EntryStatusPendingClient, true
		}
		return entity.EntryStatusPendingAccounting, true
	case entity.EntryStatusPendingClient:
		return entity.EntryStatusPendingAccounting, true
	case entity.EntryStatusPendingAccounting:
		return entity.EntryStatusApproved, true
	default:
		return e.Status, false
	}
}

// Rejectable indica si un registro puede pasar a rejected desde su estado actual.
func Rejectable(status entity.EntryStatus) bool {
	return CanTransition(status, entity.EntryStatusRejected)
}

// ActorCanReview decide si un rol puede actuar sobre un registro en el estado
// dado. admin revisa cualquier etapa; client_approver solo la cola del
// cliente; accounting las etapas de contabilidad.
func ActorCanReview(role string, status entity.EntryStatus) bool {
	switch role {
	case entity.RoleAdmin:
		return status != entity.EntryStatusDraft &&
			status != entity.EntryStatusApproved &&
			status != entity.EntryStatusRejected &&
			status != entity.EntryStatusInvoiced
	case entity.RoleClientApprover:
		return status == entity.EntryStatusPendingClient
	case entity.RoleAccounting:
		return status == entity.EntryStatusSubmitted ||
			status == entity.EntryStatusPendingReview ||
			status == entity.EntryStatusPendingAccounting
	default:
		return false
	}
}
