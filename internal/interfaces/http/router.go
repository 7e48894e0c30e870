package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/merma-api/internal/application/auth"
	"github.com/jhoicas/merma-api/internal/application/inventory"
	"github.com/jhoicas/merma-api/internal/application/usecase"
	"github.com/jhoicas/merma-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	ItemUC           *usecase.ItemUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	ImportExport     *inventory.ImportExportUseCase
	MovementQuery    *usecase.MovementQueryUseCase
	AlertUC          *usecase.AlertUseCase
	AuditUC          *usecase.AuditUseCase
	InvestigationUC  *usecase.InvestigationUseCase
	RiskUC           *usecase.RiskUseCase
	AnalyticsUC      *usecase.AnalyticsUseCase
	SettingsUC       *usecase.SettingsUseCase
	PDFGenerator     usecase.ReportPDFGenerator
	JWTSecret        string
}

// Router registra las rutas de la API. Todo excepto auth requiere Bearer
// Token; las operaciones destructivas exigen rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")
	adminOnly := RequireRole(entity.RoleAdmin)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Get("/auth/me", authHandler.Me)

	// Catálogo de artículos + importación/exportación CSV
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.ImportExport, deps.MovementQuery)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Post("/import", movementHandler.ImportItems)
	items.Get("/export", movementHandler.ExportItems)
	items.Get("/sku/:sku", itemHandler.GetBySKU)
	items.Get("/:id", itemHandler.GetByID)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", adminOnly, itemHandler.Delete)

	// Movimientos: reconciliación + log + CSV
	movements := protected.Group("/movements")
	movements.Post("/", movementHandler.Register)
	movements.Get("/", movementHandler.List)
	movements.Post("/import", movementHandler.ImportMovements)
	movements.Get("/export", movementHandler.ExportMovements)

	// Alertas de pérdida
	alerts := protected.Group("/alerts")
	alertHandler := NewAlertHandler(deps.AlertUC)
	alerts.Post("/", alertHandler.Create)
	alerts.Get("/", alertHandler.List)
	alerts.Get("/:id", alertHandler.GetByID)
	alerts.Put("/:id", alertHandler.Update)
	alerts.Delete("/:id", adminOnly, alertHandler.Delete)

	// Auditorías
	audits := protected.Group("/audits")
	auditHandler := NewAuditHandler(deps.AuditUC)
	audits.Post("/", auditHandler.Create)
	audits.Get("/", auditHandler.List)
	audits.Get("/:id", auditHandler.GetByID)
	audits.Put("/:id", auditHandler.Update)
	audits.Delete("/:id", adminOnly, auditHandler.Delete)

	// Investigaciones
	investigations := protected.Group("/investigations")
	invHandler := NewInvestigationHandler(deps.InvestigationUC)
	investigations.Post("/", invHandler.Create)
	investigations.Get("/", invHandler.List)
	investigations.Get("/:id", invHandler.GetByID)
	investigations.Put("/:id", invHandler.Update)
	investigations.Delete("/:id", adminOnly, invHandler.Delete)

	// Panel de riesgo
	risk := protected.Group("/risk")
	riskHandler := NewRiskHandler(deps.RiskUC)
	risk.Put("/", riskHandler.Upsert)
	risk.Get("/", riskHandler.List)
	risk.Delete("/:itemId", adminOnly, riskHandler.Remove)

	// Analítica del dashboard
	analytics := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC, deps.PDFGenerator)
	analytics.Get("/dashboard", analyticsHandler.Dashboard)
	analytics.Get("/shrinkage", analyticsHandler.ShrinkageReport)
	analytics.Get("/shrinkage/pdf", analyticsHandler.ShrinkageReportPDF)

	// Perfil y preferencias
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	protected.Get("/profile", settingsHandler.GetProfile)
	protected.Put("/profile", settingsHandler.UpdateProfile)
	protected.Get("/settings", settingsHandler.GetSettings)
	protected.Put("/settings", settingsHandler.UpdateSettings)
}
