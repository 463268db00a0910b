package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	apptimesheet "github.com/talento-hr/talento-api/internal/application/timesheet"

	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// TimesheetHandler maneja registros de tiempo y hojas semanales (protegido).
type TimesheetHandler struct {
	entryUC    *apptimesheet.EntryUseCase
	approvalUC *apptimesheet.ApprovalUseCase
	reportUC   *apptimesheet.ReportUseCase
}

// NewTimesheetHandler construye el handler.
func NewTimesheetHandler(
	entryUC *apptimesheet.EntryUseCase,
	approvalUC *apptimesheet.ApprovalUseCase,
	reportUC *apptimesheet.ReportUseCase,
) *TimesheetHandler {
	return &TimesheetHandler{entryUC: entryUC, approvalUC: approvalUC, reportUC: reportUC}
}

func actorFrom(c *fiber.Ctx) entity.Actor {
	return entity.Actor{ID: GetUserID(c), Role: GetRole(c)}
}

// canActOnEmployee: un employee solo opera sobre su propia semana; los roles
// administrativos sobre cualquiera.
func canActOnEmployee(c *fiber.Ctx, employeeID string) bool {
	if GetRole(c) != entity.RoleEmployee {
		return true
	}
	return GetEmployeeID(c) == employeeID
}

func parseWeekParam(c *fiber.Ctx) (time.Time, bool) {
	weekEnding, err := time.Parse(dto.DateLayout, c.Params("weekEnding"))
	if err != nil {
		return time.Time{}, false
	}
	return weekEnding, true
}

// CreateEntries godoc
// @Summary      Registrar tiempo (una o varias fechas)
// @Tags         timesheets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTimeEntriesRequest  true  "employee_id, dates[], horas; assignment_id si billable"
// @Success      201   {array}   dto.TimeEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timesheets/entries [post]
func (h *TimesheetHandler) CreateEntries(c *fiber.Ctx) error {
	var in dto.CreateTimeEntriesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if GetRole(c) == entity.RoleEmployee {
		// Un employee solo registra su propio tiempo.
		in.EmployeeID = GetEmployeeID(c)
	}
	out, err := h.entryUC.CreateEntries(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// UpdateEntry godoc
// @Summary      Editar un registro (rejected vuelve a draft)
// @Tags         timesheets
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.UpdateTimeEntryRequest  true  "campos editables"
// @Success      200   {object}  dto.TimeEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timesheets/entries/{id} [put]
func (h *TimesheetHandler) UpdateEntry(c *fiber.Ctx) error {
	var in dto.UpdateTimeEntryRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.entryUC.UpdateEntry(c.Context(), c.Params("id"), actorFrom(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// DeleteEntry godoc
// @Summary      Eliminar un registro de una semana editable
// @Tags         timesheets
// @Security     Bearer
// @Param        id  path  string  true  "ID del registro"
// @Success      204
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timesheets/entries/{id} [delete]
func (h *TimesheetHandler) DeleteEntry(c *fiber.Ctx) error {
	if err := h.entryUC.DeleteEntry(c.Context(), c.Params("id")); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListEntryEvents godoc
// @Summary      Pista de auditoría de un registro
// @Tags         timesheets
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200   {array}   dto.ApprovalEventResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timesheets/entries/{id}/events [get]
func (h *TimesheetHandler) ListEntryEvents(c *fiber.Ctx) error {
	out, err := h.entryUC.ListEvents(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetWeek godoc
// @Summary      Hoja de tiempo de (empleado, semana)
// @Tags         timesheets
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Param        weekEnding  path  string  true  "Domingo de cierre YYYY-MM-DD"
// @Success      200   {object}  dto.TimesheetResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timesheets/{employeeId}/weeks/{weekEnding} [get]
func (h *TimesheetHandler) GetWeek(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")
	if !canActOnEmployee(c, employeeID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su propia hoja"})
	}
	weekEnding, ok := parseWeekParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weekEnding inválido, formato YYYY-MM-DD"})
	}
	out, err := h.entryUC.GetWeek(c.Context(), employeeID, weekEnding)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SubmitWeek godoc
// @Summary      Enviar la semana completa a aprobación
// @Description  Valida cumplimiento sobre todos los registros; una excepción
// @Description  bloqueante devuelve 422 con la lista completa y nada cambia.
// @Tags         timesheets
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Param        weekEnding  path  string  true  "Domingo de cierre YYYY-MM-DD"
// @Success      200   {object}  dto.TimesheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/timesheets/{employeeId}/weeks/{weekEnding}/submit [post]
func (h *TimesheetHandler) SubmitWeek(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")
	if !canActOnEmployee(c, employeeID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede enviar su propia hoja"})
	}
	weekEnding, ok := parseWeekParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weekEnding inválido, formato YYYY-MM-DD"})
	}
	out, err := h.approvalUC.SubmitWeek(c.Context(), employeeID, weekEnding, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// WeekPDF godoc
// @Summary      Reporte PDF de la hoja semanal
// @Tags         timesheets
// @Security     Bearer
// @Produce      application/pdf
// @Param        employeeId  path  string  true  "ID del empleado"
// @Param        weekEnding  path  string  true  "Domingo de cierre YYYY-MM-DD"
// @Success      200   {file}    binary
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/timesheets/{employeeId}/weeks/{weekEnding}/pdf [get]
func (h *TimesheetHandler) WeekPDF(c *fiber.Ctx) error {
	employeeID := c.Params("employeeId")
	if !canActOnEmployee(c, employeeID) {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "solo puede consultar su propia hoja"})
	}
	weekEnding, ok := parseWeekParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weekEnding inválido, formato YYYY-MM-DD"})
	}
	pdfBytes, err := h.reportUC.WeekPDF(c.Context(), employeeID, weekEnding)
	if err != nil {
		return writeError(c, err)
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="timesheet-`+employeeID+`-`+c.Params("weekEnding")+`.pdf"`)
	return c.Send(pdfBytes)
}
