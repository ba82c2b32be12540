package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/application/usecase"
)

// ActivityHandler maneja la lectura de la bitácora de actividad.
type ActivityHandler struct {
	uc *usecase.ActivityUseCase
}

// NewActivityHandler construye el handler de actividad.
func NewActivityHandler(uc *usecase.ActivityUseCase) *ActivityHandler {
	return &ActivityHandler{uc: uc}
}

// List godoc
// @Summary      Actividad reciente del usuario
// @Tags         activity
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(20)
// @Success      200    {object}  dto.ActivityListResponse
// @Router       /api/activity [get]
func (h *ActivityHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListRecent(c.Context(), GetUserID(c), c.QueryInt("limit", 20))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
