package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/contaflow-api/internal/application/auth"
	"github.com/jhoicas/contaflow-api/internal/application/reports"
	"github.com/jhoicas/contaflow-api/internal/application/tasks"
	"github.com/jhoicas/contaflow-api/internal/application/usecase"
	inframail "github.com/jhoicas/contaflow-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/contaflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/contaflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/contaflow-api/internal/interfaces/http"
	"github.com/jhoicas/contaflow-api/pkg/config"
	"github.com/jhoicas/contaflow-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Adaptadores de persistencia
	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	templateRepo := postgres.NewTemplateRepository(pool)
	overrideRepo := postgres.NewOverrideRepository(pool)
	activityRepo := postgres.NewActivityRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	reminderRepo := postgres.NewReminderRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)

	// Casos de uso
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, activityRepo, log)
	templateUC := usecase.NewTemplateUseCase(templateRepo)
	overrideUC := usecase.NewOverrideUseCase(overrideRepo, templateRepo, companyRepo)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo)

	taskUC := tasks.NewTaskUseCase(taskRepo, companyRepo, activityRepo, log)
	statusUC := tasks.NewStatusUseCase(taskRepo, activityRepo, log)
	generationUC := tasks.NewGenerationUseCase(companyRepo, templateRepo, overrideRepo, taskRepo, activityRepo, log)

	mailer := inframail.NewResendClient(cfg.Mail)
	reminderUC := tasks.NewReminderUseCase(reminderRepo, notificationRepo, mailer, log)

	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := reports.NewReportUseCase(reportRepo, companyRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ContaFlow API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		TemplateUC:     templateUC,
		OverrideUC:     overrideUC,
		ActivityUC:     activityUC,
		NotificationUC: notificationUC,
		TaskUC:         taskUC,
		StatusUC:       statusUC,
		GenerationUC:   generationUC,
		ReminderUC:     reminderUC,
		ReportUC:       reportUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
