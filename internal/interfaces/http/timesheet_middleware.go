package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// accessChecker es el contrato mínimo que necesita el middleware para
// verificar el directorio. Lo implementa *usecase.EmployeeUseCase; el uso de
// interfaz evita el import circular.
type accessChecker interface {
	HasTimesheetAccess(ctx context.Context, employeeID string) (bool, error)
}

// RequireTimesheetAccess verifica contra el directorio que el empleado del
// token puede registrar tiempo (onboarding completo + bandera de acceso).
// Debe usarse DESPUÉS de AuthMiddleware. Los roles administrativos pasan sin
// ficha de empleado.
//
// Comportamiento:
//   - 403 Forbidden → onboarding incompleto o acceso revocado.
//   - 503 Service Unavailable → fallo de infraestructura al consultar la DB.
//   - Sin employee_id en el token y rol employee, responde 401.
func RequireTimesheetAccess(checker accessChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == entity.RoleAdmin || role == entity.RoleAccounting || role == entity.RoleClientApprover {
			return c.Next()
		}
		employeeID := GetEmployeeID(c)
		if employeeID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "employee_id no encontrado en el token",
			})
		}

		eligible, err := checker.HasTimesheetAccess(c.Context(), employeeID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ACCESS_CHECK_FAILED",
				Message: "no se pudo verificar el directorio, intente más tarde",
			})
		}
		if !eligible {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "TIMESHEET_ACCESS_DENIED",
				Message: "el empleado no tiene habilitadas las hojas de tiempo",
			})
		}
		return c.Next()
	}
}
