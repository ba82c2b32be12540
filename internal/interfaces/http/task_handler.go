package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/application/tasks"
	"github.com/jhoicas/contaflow-api/internal/domain"
)

// TaskHandler maneja las tareas: creación manual, listados y el toggle de
// completitud del motor de estados.
type TaskHandler struct {
	taskUC   *tasks.TaskUseCase
	statusUC *tasks.StatusUseCase
}

// NewTaskHandler construye el handler de tareas.
func NewTaskHandler(taskUC *tasks.TaskUseCase, statusUC *tasks.StatusUseCase) *TaskHandler {
	return &TaskHandler{taskUC: taskUC, statusUC: statusUC}
}

// CreateManual godoc
// @Summary      Crear tarea manual
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la empresa"
// @Param        body  body  dto.CreateTaskRequest  true  "Datos de la tarea"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/tasks [post]
func (h *TaskHandler) CreateManual(c *fiber.Ctx) error {
	companyID := c.Params("id")
	var in dto.CreateTaskRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Title == "" || in.DueDate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "title y due_date son requeridos"})
	}
	out, err := h.taskUC.CreateManual(c.Context(), companyID, GetUserID(c), in)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "due_date debe ser YYYY-MM-DD"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListByCompany godoc
// @Summary      Listar tareas de una empresa
// @Tags         tasks
// @Produce      json
// @Param        id      path   string  true   "ID de la empresa"
// @Param        status  query  string  false  "Filtro de estado"  Enums(pending, in_progress, blocked, completed)
// @Param        limit   query  int     false  "Límite"   default(50)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200     {object}  dto.TaskListResponse
// @Failure      404     {object}  dto.ErrorResponse
// @Router       /api/companies/{id}/tasks [get]
func (h *TaskHandler) ListByCompany(c *fiber.Ctx) error {
	companyID := c.Params("id")
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.taskUC.ListByCompanyForUser(c.Context(), companyID, GetUserID(c), c.Query("status"), limit, offset)
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// SetStatus godoc
// @Summary      Marcar tarea como completada o no completada
// @Description  Con completed=true la tarea pasa a completed incondicionalmente.
// @Description  Con completed=false vuelve a pending, o a blocked si alguna dependencia no está completada.
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID de la tarea"
// @Param        body  body  dto.SetTaskCompletionRequest  true  "{completed: bool}"
// @Success      200   {object}  dto.SuccessResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/tasks/{id}/status [patch]
func (h *TaskHandler) SetStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.SetTaskCompletionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Completed == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "completed es requerido"})
	}
	out, err := h.statusUC.SetTaskCompletion(c.Context(), id, *in.Completed, GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "tarea no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.SuccessResponse{Success: true, Data: out})
}
