package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/application/usecase"
)

// NotificationHandler maneja las preferencias de notificación del usuario.
type NotificationHandler struct {
	uc *usecase.NotificationUseCase
}

// NewNotificationHandler construye el handler de preferencias.
func NewNotificationHandler(uc *usecase.NotificationUseCase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// Get godoc
// @Summary      Obtener preferencias de notificación
// @Description  Si el usuario nunca guardó preferencias, devuelve los defaults (todo activo).
// @Tags         settings
// @Produce      json
// @Success      200  {object}  dto.NotificationPreferencesDTO
// @Router       /api/settings/notifications [get]
func (h *NotificationHandler) Get(c *fiber.Ctx) error {
	out, err := h.uc.Get(c.Context(), GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Guardar preferencias de notificación
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        body  body  dto.NotificationPreferencesDTO  true  "Preferencias completas"
// @Success      200   {object}  dto.NotificationPreferencesDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/settings/notifications [put]
func (h *NotificationHandler) Update(c *fiber.Ctx) error {
	var in dto.NotificationPreferencesDTO
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
