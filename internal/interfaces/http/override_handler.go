package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/application/usecase"
	"github.com/jhoicas/contaflow-api/internal/domain"
)

// OverrideHandler maneja las excepciones por empresa a plantillas del catálogo.
type OverrideHandler struct {
	uc *usecase.OverrideUseCase
}

// NewOverrideHandler construye el handler de excepciones.
func NewOverrideHandler(uc *usecase.OverrideUseCase) *OverrideHandler {
	return &OverrideHandler{uc: uc}
}

// List godoc
// @Summary      Listar excepciones de una empresa
// @Tags         overrides
// @Produce      json
// @Param        id   path  string  true  "ID de la empresa"
// @Success      200  {object}  dto.OverrideListResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/template-overrides [get]
func (h *OverrideHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListByCompany(c.Context(), c.Params("id"), GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Upsert godoc
// @Summary      Crear o actualizar excepción
// @Description  Semántica de upsert sobre (company_id, template_id): repetir el POST actualiza la fila existente.
// @Tags         overrides
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID de la empresa"
// @Param        body  body  dto.UpsertOverrideRequest  true  "Datos de la excepción"
// @Success      200   {object}  dto.OverrideResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/template-overrides [post]
func (h *OverrideHandler) Upsert(c *fiber.Ctx) error {
	var in dto.UpsertOverrideRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.TemplateID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "template_id es requerido"})
	}
	out, err := h.uc.Upsert(c.Context(), c.Params("id"), GetUserID(c), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa o plantilla no encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "custom_deadline_day debe estar entre 1 y 31, custom_deadline_month entre 1 y 12"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar excepción
// @Tags         overrides
// @Produce      json
// @Param        id           path   string  true  "ID de la empresa"
// @Param        template_id  query  string  true  "ID de la plantilla"
// @Success      200  {object}  dto.StatusResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/template-overrides [delete]
func (h *OverrideHandler) Delete(c *fiber.Ctx) error {
	templateID := c.Query("template_id")
	if templateID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "template_id es requerido"})
	}
	if err := h.uc.Delete(c.Context(), c.Params("id"), GetUserID(c), templateID); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}
