package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talento-hr/talento-api/internal/application/dto"
	"github.com/talento-hr/talento-api/internal/application/usecase"
)

// AssignmentHandler maneja las asignaciones empleado-cliente con
// tarifa y orden de compra.
type AssignmentHandler struct {
	uc *usecase.AssignmentUseCase
}

// NewAssignmentHandler construye el handler.
func NewAssignmentHandler(uc *usecase.AssignmentUseCase) *AssignmentHandler {
	return &AssignmentHandler{uc: uc}
}

// Create godoc
// @Summary      Alta de asignación
// @Tags         assignments
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAssignmentRequest  true  "employee_id, client_id, billing_rate"
// @Success      201   {object}  dto.AssignmentResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assignments [post]
func (h *AssignmentHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAssignmentRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Asignación por ID
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200   {object}  dto.AssignmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assignments/{id} [get]
func (h *AssignmentHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar asignaciones; filtra por empleado si se indica
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        employeeId  query  string  false  "filtrar por empleado"
// @Param        limit       query  int     false  "por defecto 20"
// @Param        offset      query  int     false  "por defecto 0"
// @Success      200   {array}   dto.AssignmentResponse
// @Router       /api/assignments [get]
func (h *AssignmentHandler) List(c *fiber.Ctx) error {
	if employeeID := c.Query("employeeId"); employeeID != "" {
		out, err := h.uc.ListByEmployee(c.Context(), employeeID)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(out)
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()
	out, err := h.uc.List(c.Context(), page.Limit, page.Offset)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Deactivate godoc
// @Summary      Cerrar asignación (ya no acepta horas facturables)
// @Tags         assignments
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la asignación"
// @Success      200   {object}  dto.AssignmentResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/assignments/{id}/deactivate [post]
func (h *AssignmentHandler) Deactivate(c *fiber.Ctx) error {
	out, err := h.uc.Deactivate(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
