package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/talento-hr/talento-api/internal/application/auth"
	apptimesheet "github.com/talento-hr/talento-api/internal/application/timesheet"
	"github.com/talento-hr/talento-api/internal/application/usecase"
	"github.com/talento-hr/talento-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	ClientUC     *usecase.ClientUseCase
	VendorUC     *usecase.VendorUseCase
	AssignmentUC *usecase.AssignmentUseCase
	ExpenseUC    *usecase.ExpenseUseCase
	EntryUC      *apptimesheet.EntryUseCase
	ApprovalUC   *apptimesheet.ApprovalUseCase
	QueueUC      *apptimesheet.QueueUseCase
	ReportUC     *apptimesheet.ReportUseCase
	JWTSecret    string
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

	adminOnly := RequireRole(entity.RoleAdmin)
	accountingOrAdmin := RequireRole(entity.RoleAccounting, entity.RoleAdmin)

	// Employees (protegido; mutaciones solo admin)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", adminOnly, employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", adminOnly, employeeHandler.Update)
	employees.Post("/:id/onboarding/start", adminOnly, employeeHandler.StartOnboarding)
	employees.Post("/:id/onboarding/complete", adminOnly, employeeHandler.CompleteOnboarding)
	employees.Post("/:id/offboard", adminOnly, employeeHandler.Offboard)

	// Clients (protegido; mutaciones solo admin)
	clients := protected.Group("/clients")
	clientHandler := NewClientHandler(deps.ClientUC)
	clients.Post("/", adminOnly, clientHandler.Create)
	clients.Get("/", clientHandler.List)
	clients.Get("/:id", clientHandler.GetByID)
	clients.Put("/:id", adminOnly, clientHandler.Update)

	// Vendors (protegido; mutaciones solo admin)
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", adminOnly, vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)

	// Assignments (protegido; mutaciones solo admin)
	assignments := protected.Group("/assignments")
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Post("/", adminOnly, assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)
	assignments.Get("/:id", assignmentHandler.GetByID)
	assignments.Post("/:id/deactivate", adminOnly, assignmentHandler.Deactivate)

	// Expenses (protegido; aprobar/rechazar solo contabilidad)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/employee/:employeeId", expenseHandler.ListByEmployee)
	expenses.Get("/:id", expenseHandler.GetByID)
	expenses.Post("/:id/submit", expenseHandler.Submit)
	expenses.Post("/:id/approve", accountingOrAdmin, expenseHandler.Approve)
	expenses.Post("/:id/reject", accountingOrAdmin, expenseHandler.Reject)
	expenses.Delete("/:id", expenseHandler.Delete)

	// Timesheets (protegido; la escritura de un empleado exige
	// onboarding completado y acceso habilitado en su ficha)
	timesheets := protected.Group("/timesheets")
	timesheetHandler := NewTimesheetHandler(deps.EntryUC, deps.ApprovalUC, deps.ReportUC)
	requireAccess := RequireTimesheetAccess(deps.EmployeeUC)
	timesheets.Post("/entries", requireAccess, timesheetHandler.CreateEntries)
	timesheets.Put("/entries/:id", requireAccess, timesheetHandler.UpdateEntry)
	timesheets.Delete("/entries/:id", requireAccess, timesheetHandler.DeleteEntry)
	timesheets.Get("/entries/:id/events", timesheetHandler.ListEntryEvents)
	timesheets.Get("/:employeeId/weeks/:weekEnding", timesheetHandler.GetWeek)
	timesheets.Get("/:employeeId/weeks/:weekEnding/pdf", timesheetHandler.WeekPDF)
	timesheets.Post("/:employeeId/weeks/:weekEnding/submit", requireAccess, timesheetHandler.SubmitWeek)

	// Approvals (protegido; cada cola restringida a su rol)
	approvals := protected.Group("/approvals")
	approvalHandler := NewApprovalHandler(deps.ApprovalUC, deps.QueueUC)
	approvals.Get("/client-queue", RequireRole(entity.RoleClientApprover, entity.RoleAdmin), approvalHandler.ClientQueue)
	approvals.Get("/accounting-queue", accountingOrAdmin, approvalHandler.AccountingQueue)
	approvals.Post("/entries/:id/approve", approvalHandler.ApproveEntry)
	approvals.Post("/entries/:id/reject", approvalHandler.RejectEntry)
	approvals.Post("/:employeeId/weeks/:weekEnding/approve", approvalHandler.ApproveWeek)
	approvals.Post("/:employeeId/weeks/:weekEnding/reject", approvalHandler.RejectWeek)
	approvals.Post("/:employeeId/weeks/:weekEnding/invoice", accountingOrAdmin, approvalHandler.MarkWeekInvoiced)
}
