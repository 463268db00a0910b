package http

import (
	"github.com/gofiber/fiber/v2"
	apptimesheet "github.com/talento-hr/talento-api/internal/application/timesheet"

	"github.com/talento-hr/talento-api/internal/application/dto"
)

// ApprovalHandler maneja colas y acciones del motor de aprobación (protegido;
// los roles se restringen en el router).
type ApprovalHandler struct {
	approvalUC *apptimesheet.ApprovalUseCase
	queueUC    *apptimesheet.QueueUseCase
}

// NewApprovalHandler construye el handler.
func NewApprovalHandler(approvalUC *apptimesheet.ApprovalUseCase, queueUC *apptimesheet.QueueUseCase) *ApprovalHandler {
	return &ApprovalHandler{approvalUC: approvalUC, queueUC: queueUC}
}

// ClientQueue godoc
// @Summary      Cola de aprobación del cliente
// @Description  Registros en pending_client_approval, con monto calculado
// @Description  (regular*tarifa + extra*tarifa*1.5).
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Success      200   {array}   dto.QueueItemResponse
// @Router       /api/approvals/client-queue [get]
func (h *ApprovalHandler) ClientQueue(c *fiber.Ctx) error {
	out, err := h.queueUC.ListClientQueue(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// AccountingQueue godoc
// @Summary      Cola de aprobación de contabilidad
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Success      200   {array}   dto.QueueItemResponse
// @Router       /api/approvals/accounting-queue [get]
func (h *ApprovalHandler) AccountingQueue(c *fiber.Ctx) error {
	out, err := h.queueUC.ListAccountingQueue(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ApproveEntry godoc
// @Summary      Aprobar un registro (avanza una etapa)
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del registro"
// @Success      200   {object}  dto.TimeEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/entries/{id}/approve [post]
func (h *ApprovalHandler) ApproveEntry(c *fiber.Ctx) error {
	out, err := h.approvalUC.ApproveEntry(c.Context(), c.Params("id"), actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RejectEntry godoc
// @Summary      Rechazar un registro (comentario obligatorio)
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del registro"
// @Param        body  body  dto.RejectRequest  true  "comment"
// @Success      200   {object}  dto.TimeEntryResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/entries/{id}/reject [post]
func (h *ApprovalHandler) RejectEntry(c *fiber.Ctx) error {
	var in dto.RejectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.approvalUC.RejectEntry(c.Context(), c.Params("id"), actorFrom(c), in.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// ApproveWeek godoc
// @Summary      Aprobar la semana completa (todo o nada)
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Param        weekEnding  path  string  true  "Domingo de cierre YYYY-MM-DD"
// @Success      200   {object}  dto.TimesheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{employeeId}/weeks/{weekEnding}/approve [post]
func (h *ApprovalHandler) ApproveWeek(c *fiber.Ctx) error {
	weekEnding, ok := parseWeekParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weekEnding inválido, formato YYYY-MM-DD"})
	}
	out, err := h.approvalUC.ApproveWeek(c.Context(), c.Params("employeeId"), weekEnding, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// RejectWeek godoc
// @Summary      Rechazar la semana completa (comentario obligatorio)
// @Tags         approvals
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Param        weekEnding  path  string  true  "Domingo de cierre YYYY-MM-DD"
// @Param        body  body  dto.RejectRequest  true  "comment"
// @Success      200   {object}  dto.TimesheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{employeeId}/weeks/{weekEnding}/reject [post]
func (h *ApprovalHandler) RejectWeek(c *fiber.Ctx) error {
	var in dto.RejectRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	weekEnding, ok := parseWeekParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weekEnding inválido, formato YYYY-MM-DD"})
	}
	out, err := h.approvalUC.RejectWeek(c.Context(), c.Params("employeeId"), weekEnding, actorFrom(c), in.Comment)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// MarkWeekInvoiced godoc
// @Summary      Marcar la semana aprobada como facturada (terminal)
// @Tags         approvals
// @Security     Bearer
// @Produce      json
// @Param        employeeId  path  string  true  "ID del empleado"
// @Param        weekEnding  path  string  true  "Domingo de cierre YYYY-MM-DD"
// @Success      200   {object}  dto.TimesheetResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/approvals/{employeeId}/weeks/{weekEnding}/invoice [post]
func (h *ApprovalHandler) MarkWeekInvoiced(c *fiber.Ctx) error {
	weekEnding, ok := parseWeekParam(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "weekEnding inválido, formato YYYY-MM-DD"})
	}
	out, err := h.approvalUC.MarkWeekInvoiced(c.Context(), c.Params("employeeId"), weekEnding, actorFrom(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
