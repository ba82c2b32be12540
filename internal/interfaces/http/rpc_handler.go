package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contaflow-api/internal/application/dto"
	"github.com/jhoicas/contaflow-api/internal/application/tasks"
	"github.com/jhoicas/contaflow-api/internal/domain"
)

// RPCHandler expone los endpoints de operación (cron / administración):
// generación de tareas, barrido de estados y envío de recordatorios.
type RPCHandler struct {
	generationUC *tasks.GenerationUseCase
	reminderUC   *tasks.ReminderUseCase
	taskUC       *tasks.TaskUseCase
}

// NewRPCHandler construye el handler de RPC.
func NewRPCHandler(generationUC *tasks.GenerationUseCase, reminderUC *tasks.ReminderUseCase, taskUC *tasks.TaskUseCase) *RPCHandler {
	return &RPCHandler{generationUC: generationUC, reminderUC: reminderUC, taskUC: taskUC}
}

// GenerateTasks godoc
// @Summary      Generar tareas para una empresa (admin)
// @Tags         rpc
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GenerateTasksRequest  true  "company_id, start_date?, months_ahead?"
// @Success      200   {object}  dto.StatusResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /rpc/generate_tasks_for_company [post]
func (h *RPCHandler) GenerateTasks(c *fiber.Ctx) error {
	var in dto.GenerateTasksRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CompanyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id es requerido"})
	}
	var startDate *time.Time
	if in.StartDate != "" {
		parsed, err := time.Parse("2006-01-02", in.StartDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "start_date debe ser YYYY-MM-DD"})
		}
		startDate = &parsed
	}
	_, err := h.generationUC.GenerateForCompany(c.Context(), in.CompanyID, startDate, in.MonthsAhead, GetUserID(c))
	if err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "empresa no encontrada"})
		}
		if err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "months_ahead debe estar entre 1 y 36"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// UpdateStatuses godoc
// @Summary      Barrido periódico de estados (admin)
// @Description  Reevalúa tareas vencidas no completadas; los estados pending/blocked se recalculan según dependencias.
// @Tags         rpc
// @Produce      json
// @Success      200  {object}  dto.StatusResponse
// @Router       /rpc/update_task_statuses [post]
func (h *RPCHandler) UpdateStatuses(c *fiber.Ctx) error {
	if _, err := h.generationUC.UpdateStatuses(c.Context()); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StatusResponse{Status: "ok"})
}

// SendReminders godoc
// @Summary      Enviar recordatorios de vencimiento (admin)
// @Tags         rpc
// @Produce      json
// @Success      200  {object}  dto.ReminderRunResult
// @Router       /rpc/send_task_reminders [post]
func (h *RPCHandler) SendReminders(c *fiber.Ctx) error {
	out, err := h.reminderUC.SendDueReminders(c.Context(), time.Now())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListTasks godoc
// @Summary      Listar tareas de cualquier empresa (admin)
// @Tags         rpc
// @Produce      json
// @Param        company_id  query  string  true   "ID de la empresa"
// @Param        status      query  string  false  "Filtro de estado"
// @Param        limit       query  int     false  "Límite"   default(50)
// @Param        offset      query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.TaskListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /rpc/tasks [get]
func (h *RPCHandler) ListTasks(c *fiber.Ctx) error {
	companyID := c.Query("company_id")
	if companyID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "company_id es requerido"})
	}
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "limit debe ser positivo"})
	}
	if offset < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "offset no puede ser negativo"})
	}
	out, err := h.taskUC.ListByCompany(c.Context(), companyID, c.Query("status"), limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
