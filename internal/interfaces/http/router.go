package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/contaflow-api/internal/application/auth"
	"github.com/jhoicas/contaflow-api/internal/application/reports"
	"github.com/jhoicas/contaflow-api/internal/application/tasks"
	"github.com/jhoicas/contaflow-api/internal/application/usecase"
	"github.com/jhoicas/contaflow-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	TemplateUC     *usecase.TemplateUseCase
	OverrideUC     *usecase.OverrideUseCase
	ActivityUC     *usecase.ActivityUseCase
	NotificationUC *usecase.NotificationUseCase
	TaskUC         *tasks.TaskUseCase
	StatusUC       *tasks.StatusUseCase
	GenerationUC   *tasks.GenerationUseCase
	ReminderUC     *tasks.ReminderUseCase
	ReportUC       *reports.ReportUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Post("/", companyHandler.Create)
	companies.Get("/:id", companyHandler.GetByID)
	companies.Patch("/:id", companyHandler.Update)

	// Tasks anidadas en la empresa + toggle de estado
	taskHandler := NewTaskHandler(deps.TaskUC, deps.StatusUC)
	companies.Get("/:id/tasks", taskHandler.ListByCompany)
	companies.Post("/:id/tasks", taskHandler.CreateManual)
	protected.Patch("/tasks/:id/status", taskHandler.SetStatus)

	// Template overrides por empresa
	overrideHandler := NewOverrideHandler(deps.OverrideUC)
	companies.Get("/:id/template-overrides", overrideHandler.List)
	companies.Post("/:id/template-overrides", overrideHandler.Upsert)
	companies.Delete("/:id/template-overrides", overrideHandler.Delete)

	// Catálogo de plantillas: lectura para todos, escritura solo admin
	templates := protected.Group("/task-templates")
	templateHandler := NewTemplateHandler(deps.TemplateUC)
	templates.Get("/", templateHandler.List)
	templates.Post("/", RequireRole(entity.RoleAdmin), templateHandler.Create)
	templates.Patch("/:id", RequireRole(entity.RoleAdmin), templateHandler.Update)

	// Actividad y preferencias
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activity", activityHandler.List)

	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	protected.Get("/settings/notifications", notificationHandler.Get)
	protected.Put("/settings/notifications", notificationHandler.Update)

	// Informes
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/monthly", reportHandler.Monthly)
	protected.Get("/reports/monthly/pdf", reportHandler.MonthlyPDF)

	// RPC de operación (cron): protegido y solo admin
	rpc := app.Group("/rpc", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin))
	rpcHandler := NewRPCHandler(deps.GenerationUC, deps.ReminderUC, deps.TaskUC)
	rpc.Post("/generate_tasks_for_company", rpcHandler.GenerateTasks)
	rpc.Post("/update_task_statuses", rpcHandler.UpdateStatuses)
	rpc.Post("/send_task_reminders", rpcHandler.SendReminders)
	rpc.Get("/tasks", rpcHandler.ListTasks)
}
