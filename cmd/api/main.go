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
	"github.com/talento-hr/talento-api/internal/application/auth"
	apptimesheet "github.com/talento-hr/talento-api/internal/application/timesheet"
	"github.com/talento-hr/talento-api/internal/application/usecase"
	infrapdf "github.com/talento-hr/talento-api/internal/infrastructure/pdf"
	"github.com/talento-hr/talento-api/internal/infrastructure/postgres"
	httpRouter "github.com/talento-hr/talento-api/internal/interfaces/http"
	"github.com/talento-hr/talento-api/pkg/config"
	"github.com/talento-hr/talento-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	userRepo := postgres.NewUserRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	entryRepo := postgres.NewTimeEntryRepository(pool)
	eventRepo := postgres.NewApprovalEventRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, employeeRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	clientUC := usecase.NewClientUseCase(clientRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	assignmentUC := usecase.NewAssignmentUseCase(assignmentRepo, employeeRepo, clientRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, employeeRepo)

	// Motor de hojas de tiempo: registro, envío atómico por semana,
	// aprobación multi-etapa y colas derivadas.
	entryUC := apptimesheet.NewEntryUseCase(txRunner, entryRepo, assignmentRepo, employeeRepo, eventRepo)
	approvalUC := apptimesheet.NewApprovalUseCase(txRunner, entryRepo, assignmentRepo)
	queueUC := apptimesheet.NewQueueUseCase(entryRepo, employeeRepo)

	// PDF: hoja semanal imprimible con totales y hallazgos de cumplimiento
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := apptimesheet.NewReportUseCase(entryRepo, assignmentRepo, employeeRepo, pdfGenerator)

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
		Title:    "Talento HR API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		EmployeeUC:   employeeUC,
		ClientUC:     clientUC,
		VendorUC:     vendorUC,
		AssignmentUC: assignmentUC,
		ExpenseUC:    expenseUC,
		EntryUC:      entryUC,
		ApprovalUC:   approvalUC,
		QueueUC:      queueUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
