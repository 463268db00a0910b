package domain

import (
	"errors"
	"fmt"

	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")

	// ErrTimesheetAccess: el empleado no completó onboarding o tiene el acceso revocado.
	ErrTimesheetAccess = errors.New("el empleado no tiene acceso a hojas de tiempo")
	// ErrWeekLocked: la semana ya fue enviada y no admite ediciones.
	ErrWeekLocked = errors.New("la semana ya fue enviada y no se puede editar")
	// ErrInvalidTransition: cambio de estado fuera de la tabla de transiciones.
	ErrInvalidTransition = errors.New("transición de estado no permitida")
)

// PolicyViolationError agrupa las excepciones de cumplimiento que impidieron
// una operación (envío de semana, guardado de registro). El caller recibe la
// lista completa, nunca un booleano.
type PolicyViolationError struct {
	Exceptions []entity.Exception
}

func (e *PolicyViolationError) Error() string {
	return fmt.Sprintf("violación de política: %d excepción(es) bloqueante(s)", len(e.Exceptions))
}

// AsPolicyViolation extrae un *PolicyViolationError de la cadena de errores.
func AsPolicyViolation(err error) (*PolicyViolationError, bool) {
	var pv *PolicyViolationError
	if errors.As(err, &pv) {
		return pv, true
	}
	return nil, false
}
