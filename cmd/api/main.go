package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/merma-api/docs"
	"github.com/jhoicas/merma-api/internal/application/auth"
	"github.com/jhoicas/merma-api/internal/application/inventory"
	"github.com/jhoicas/merma-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/merma-api/internal/infrastructure/pdf"
	"github.com/jhoicas/merma-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/merma-api/internal/interfaces/http"
	"github.com/jhoicas/merma-api/pkg/config"
	"github.com/jhoicas/merma-api/pkg/logger"
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
	itemRepo := postgres.NewItemRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	alertRepo := postgres.NewAlertRepository(pool)
	auditRepo := postgres.NewAuditRepository(pool)
	investigationRepo := postgres.NewInvestigationRepository(pool)
	riskRepo := postgres.NewRiskRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// La conciliación de stock y el import CSV corren dentro de una
	// transacción del TxRunner; los repos de arriba operan sobre el pool.
	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	importExportUC := inventory.NewImportExportUseCase(txRunner, itemRepo, movementRepo)
	movementQueryUC := usecase.NewMovementQueryUseCase(movementRepo, itemRepo)

	itemUC := usecase.NewItemUseCase(itemRepo)
	alertUC := usecase.NewAlertUseCase(alertRepo, itemRepo)
	auditUC := usecase.NewAuditUseCase(auditRepo)
	investigationUC := usecase.NewInvestigationUseCase(investigationRepo, alertRepo)
	riskUC := usecase.NewRiskUseCase(riskRepo, itemRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)

	// PDF: reporte de merma por departamento y tendencia mensual
	pdfGenerator := infrapdf.NewMarotoReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	// El dashboard SPA corre en otro origen
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Merma API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:           authUC,
		ItemUC:           itemUC,
		RegisterMovement: registerMovementUC,
		ImportExport:     importExportUC,
		MovementQuery:    movementQueryUC,
		AlertUC:          alertUC,
		AuditUC:          auditUC,
		InvestigationUC:  investigationUC,
		RiskUC:           riskUC,
		AnalyticsUC:      analyticsUC,
		SettingsUC:       settingsUC,
		PDFGenerator:     pdfGenerator,
		JWTSecret:        cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("apagando servidor")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	log.Info().Msg("servidor detenido")
}
