// seed puebla la base de datos con el dataset de demostración: usuarios,
// artículos de inventario, historial de movimientos, alertas, auditorías,
// investigaciones y artículos de alto riesgo.
//
// Uso: go run ./cmd/seed
// Si ya existen artículos en la base, no inserta nada.
package main

import (
	"context"
	"os"

	"github.com/jhoicas/merma-api/internal/application/seed"
	"github.com/jhoicas/merma-api/internal/infrastructure/postgres"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	seeder := seed.NewSeeder(
		postgres.NewUserRepository(pool),
		postgres.NewItemRepository(pool),
		postgres.NewMovementRepository(pool),
		postgres.NewAlertRepository(pool),
		postgres.NewAuditRepository(pool),
		postgres.NewInvestigationRepository(pool),
		postgres.NewRiskRepository(pool),
	)

	result, err := seeder.Run()
	if err != nil {
		log.Error().Err(err).Msg("seed fallido")
		os.Exit(1)
	}
	if result.Skipped {
		log.Info().Msg("la base ya tiene datos; no se insertó nada")
		return
	}

	log.Info().
		Int("users", result.Users).
		Int("items", result.Items).
		Int("movements", result.Movements).
		Int("alerts", result.Alerts).
		Int("audits", result.Audits).
		Int("investigations", result.Investigations).
		Int("high_risk_items", result.HighRiskItems).
		Msg("dataset de demostración insertado")
}
