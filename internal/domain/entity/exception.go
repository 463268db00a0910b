package entity

// Severidad de una excepción de cumplimiento.
const (
	SeverityBlocking = "blocking" // Impide salir de draft/rejected
	SeverityInfo     = "info"     // Informativa, no bloquea
)

// Tipos de excepción.
const (
	ExceptionMissingOTApproval = "missing_ot_approval"
	ExceptionPOBudgetExceeded  = "po_budget_exceeded"
	ExceptionInvalidHours      = "invalid_hours"
)

// Exception hallazgo de cumplimiento sobre un registro o una semana.
// Es un value object transitorio: se recalcula desde los datos vigentes en
// cada validación y nunca se persiste, para que no queden hallazgos rancios.
type Exception struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// Blocking indica si la excepción impide una transición de estado.
func (e Exception) Blocking() bool {
	return e.Severity == SeverityBlocking
}
