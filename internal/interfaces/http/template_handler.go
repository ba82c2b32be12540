package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/application/usecase"
	"github.com/jhoicas/contaflow-api/internal/domain"
)

// TemplateHandler maneja el catálogo global de plantillas. La lectura es para
// cualquier usuario autenticado; crear y actualizar exigen rol admin (el router
// monta RequireRole en esas rutas).
type TemplateHandler struct {
	uc *usecase.TemplateUseCase
}

// NewTemplateHandler construye el handler de plantillas.
func NewTemplateHandler(uc *usecase.TemplateUseCase) *TemplateHandler {
	return &TemplateHandler{uc: uc}
}

// List godoc
// @Summary      Listar plantillas del catálogo
// @Tags         templates
// @Produce      json
// @Param        active  query  bool  false  "Solo plantillas activas"  default(true)
// @Success      200     {object}  dto.TemplateListResponse
// @Router       /api/task-templates [get]
func (h *TemplateHandler) List(c *fiber.Ctx) error {
	activeOnly := c.QueryBool("active", true)
	out, err := h.uc.List(c.Context(), activeOnly)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear plantilla (admin)
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTemplateRequest  true  "Datos de la plantilla"
// @Success      201   {object}  dto.TemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/task-templates [post]
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Frequency == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y frequency son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de plantilla inválidos"})
		}
		if err == domain.ErrDuplicate {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "plantilla duplicada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar plantilla (admin)
// @Tags         templates
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la plantilla"
// @Param        body  body  dto.UpdateTemplateRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.TemplateResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/task-templates/{id} [patch]
func (h *TemplateHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateTemplateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de plantilla inválidos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "plantilla no encontrada"})
	}
	return c.JSON(out)
}
