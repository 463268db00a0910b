package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain"
)

// writeError traduce los errores de dominio al contrato HTTP. Una violación
// de política (422) incluye en Details la lista completa de excepciones; el
// resto mapea a los sentinelas del dominio.
func writeError(c *fiber.Ctx, err error) error {
	if pv, ok := domain.AsPolicyViolation(err); ok {
		details := make([]dto.ExceptionResponse, 0, len(pv.Exceptions))
		for _, ex := range pv.Exceptions {
			details = append(details, dto.ExceptionResponse{
				Kind:     ex.Kind,
				Message:  ex.Message,
				Severity: ex.Severity,
			})
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Code:    "POLICY_VIOLATION",
			Message: "la semana tiene excepciones bloqueantes",
			Details: details,
		})
	}
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrWeekLocked):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "WEEK_LOCKED", Message: "la semana ya fue enviada y no admite cambios"})
	case errors.Is(err, domain.ErrInvalidTransition):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TRANSITION", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrUserNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "recurso no encontrado"})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "otro proceso modificó la semana, vuelva a leer y reintente"})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el recurso ya existe"})
	case errors.Is(err, domain.ErrTimesheetAccess):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "TIMESHEET_ACCESS_DENIED", Message: "el empleado no tiene habilitadas las hojas de tiempo"})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acceso denegado al recurso"})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "credenciales inválidas"})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
