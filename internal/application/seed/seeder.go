// Package seed carga el dataset de demostración. Solo se ejecuta desde
// cmd/seed: ninguna ruta de lectura siembra datos implícitamente.
package seed

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// DemoPassword es la contraseña de los usuarios de demostración.
const DemoPassword = "merma1234"

// Result resume lo insertado por una corrida del seeder.
type Result struct {
	Skipped        bool // ya había datos, no se insertó nada
	Users          int
	Items          int
	Movements      int
	Alerts         int
	Audits         int
	Investigations int
	HighRiskItems  int
}

// Seeder inserta el dataset de demostración sobre los repositorios.
type Seeder struct {
	userRepo  repository.UserRepository
	itemRepo  repository.ItemRepository
	movRepo   repository.MovementRepository
	alertRepo repository.AlertRepository
	auditRepo repository.AuditRepository
	invRepo   repository.InvestigationRepository
	riskRepo  repository.RiskRepository
}

// NewSeeder construye el seeder con sus dependencias.
func NewSeeder(
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
	movRepo repository.MovementRepository,
	alertRepo repository.AlertRepository,
	auditRepo repository.AuditRepository,
	invRepo repository.InvestigationRepository,
	riskRepo repository.RiskRepository,
) *Seeder {
	return &Seeder{
		userRepo:  userRepo,
		itemRepo:  itemRepo,
		movRepo:   movRepo,
		alertRepo: alertRepo,
		auditRepo: auditRepo,
		invRepo:   invRepo,
		riskRepo:  riskRepo,
	}
}

// Run inserta el dataset completo. Es idempotente a nivel de corrida: si el
// catálogo ya tiene artículos devuelve Skipped=true sin tocar nada.
func (s *Seeder) Run() (*Result, error) {
	count, err := s.itemRepo.Count(repository.ItemFilter{})
	if err != nil {
		return nil, fmt.Errorf("seed: verificar catálogo: %w", err)
	}
	if count > 0 {
		return &Result{Skipped: true}, nil
	}

	res := &Result{}
	if err := s.seedUsers(res); err != nil {
		return nil, err
	}
	items, err := s.seedItems(res)
	if err != nil {
		return nil, err
	}
	if err := s.seedMovements(items, res); err != nil {
		return nil, err
	}
	if err := s.seedCases(items, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Seeder) seedUsers(res *Result) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash de contraseña: %w", err)
	}
	now := time.Now()
	users := []*entity.User{
		{
			ID:           uuid.NewString(),
			Email:        "admin@demo.local",
			PasswordHash: string(hash),
			Name:         "Administrador Demo",
			Role:         entity.RoleAdmin,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
		{
			ID:           uuid.NewString(),
			Email:        "analista@demo.local",
			PasswordHash: string(hash),
			Name:         "Analista Demo",
			Role:         entity.RoleAnalista,
			Status:       "active",
			CreatedAt:    now,
			UpdatedAt:    now,
		},
	}
	for _, u := range users {
		existing, err := s.userRepo.FindByEmail(u.Email)
		if err != nil {
			return fmt.Errorf("seed: buscar usuario %s: %w", u.Email, err)
		}
		if existing != nil {
			continue
		}
		if err := s.userRepo.Create(u); err != nil {
			return fmt.Errorf("seed: crear usuario %s: %w", u.Email, err)
		}
		res.Users++
	}
	return nil
}

func (s *Seeder) seedItems(res *Result) (map[string]*entity.InventoryItem, error) {
	now := time.Now()
	items := []*entity.InventoryItem{
		{SKU: "ELEC-1001", Name: "Audífonos inalámbricos", Department: "Electrónica", Quantity: 45, UnitValue: decimal.NewFromFloat(89.99), Status: entity.StatusInStock},
		{SKU: "ELEC-1002", Name: "Cargador USB-C 65W", Department: "Electrónica", Quantity: 8, UnitValue: decimal.NewFromFloat(34.50), Status: entity.StatusLowStock},
		{SKU: "ELEC-1003", Name: "Memoria SD 128GB", Department: "Electrónica", Quantity: 0, UnitValue: decimal.NewFromFloat(21.90), Status: entity.StatusOutOfStock},
		{SKU: "ABAR-2001", Name: "Café molido 500g", Department: "Abarrotes", Quantity: 120, UnitValue: decimal.NewFromFloat(7.25), Status: entity.StatusInStock},
		{SKU: "ABAR-2002", Name: "Aceite de oliva 1L", Department: "Abarrotes", Quantity: 62, UnitValue: decimal.NewFromFloat(11.80), Status: entity.StatusInStock},
		{SKU: "ROPA-3001", Name: "Chaqueta impermeable", Department: "Ropa", Quantity: 17, UnitValue: decimal.NewFromFloat(59.00), Status: entity.StatusInStock},
		{SKU: "ROPA-3002", Name: "Jeans clásicos", Department: "Ropa", Quantity: 4, UnitValue: decimal.NewFromFloat(42.00), Status: entity.StatusLowStock},
		{SKU: "BELL-4001", Name: "Perfume 100ml", Department: "Belleza", Quantity: 23, UnitValue: decimal.NewFromFloat(75.00), Status: entity.StatusInStock},
		{SKU: "HOGA-5001", Name: "Juego de sábanas queen", Department: "Hogar", Quantity: 31, UnitValue: decimal.NewFromFloat(48.90), Status: entity.StatusInStock},
		{SKU: "HOGA-5002", Name: "Lámpara de escritorio", Department: "Hogar", Quantity: 0, UnitValue: decimal.NewFromFloat(27.40), Status: entity.StatusInactive},
	}
	bySKU := make(map[string]*entity.InventoryItem, len(items))
	for _, it := range items {
		it.ID = uuid.NewString()
		it.LastUpdated = now
		it.CreatedAt = now
		if err := s.itemRepo.Create(it); err != nil {
			return nil, fmt.Errorf("seed: crear artículo %s: %w", it.SKU, err)
		}
		bySKU[it.SKU] = it
		res.Items++
	}
	return bySKU, nil
}

func (s *Seeder) seedMovements(items map[string]*entity.InventoryItem, res *Result) error {
	now := time.Now()
	type row struct {
		sku      string
		movType  entity.MovementType
		qty      int
		employee string
		daysAgo  int
	}
	rows := []row{
		{"ELEC-1001", entity.MovementReceived, 50, "Carlos Pérez", 30},
		{"ELEC-1001", entity.MovementSold, 5, "María López", 12},
		{"ELEC-1002", entity.MovementReceived, 20, "Carlos Pérez", 28},
		{"ELEC-1002", entity.MovementSold, 10, "María López", 9},
		{"ELEC-1002", entity.MovementStolen, 2, "", 6},
		{"ELEC-1003", entity.MovementSold, 15, "María López", 20},
		{"ELEC-1003", entity.MovementStolen, 3, "", 4},
		{"ABAR-2001", entity.MovementReceived, 150, "Jorge Díaz", 25},
		{"ABAR-2001", entity.MovementSold, 28, "Ana Torres", 7},
		{"ABAR-2001", entity.MovementDamaged, 2, "Jorge Díaz", 3},
		{"ABAR-2002", entity.MovementReceived, 70, "Jorge Díaz", 22},
		{"ABAR-2002", entity.MovementSold, 8, "Ana Torres", 5},
		{"ROPA-3001", entity.MovementReceived, 25, "Lucía Gómez", 18},
		{"ROPA-3001", entity.MovementSold, 6, "Lucía Gómez", 8},
		{"ROPA-3001", entity.MovementStolen, 2, "", 2},
		{"ROPA-3002", entity.MovementAdjustment, 4, "Lucía Gómez", 10},
		{"BELL-4001", entity.MovementReceived, 30, "Carlos Pérez", 15},
		{"BELL-4001", entity.MovementStolen, 4, "", 5},
		{"BELL-4001", entity.MovementSold, 3, "Ana Torres", 1},
		{"HOGA-5001", entity.MovementReceived, 35, "Jorge Díaz", 14},
		{"HOGA-5001", entity.MovementSold, 4, "María López", 2},
		{"HOGA-5002", entity.MovementDamaged, 5, "Jorge Díaz", 11},
	}
	for _, r := range rows {
		item, ok := items[r.sku]
		if !ok {
			continue
		}
		m := &entity.StockMovement{
			ID:        uuid.NewString(),
			ItemID:    item.ID,
			SKU:       r.sku,
			Type:      r.movType,
			Quantity:  r.qty,
			Employee:  r.employee,
			Date:      now.AddDate(0, 0, -r.daysAgo),
			CreatedAt: now,
		}
		if err := s.movRepo.Create(m); err != nil {
			return fmt.Errorf("seed: crear movimiento %s/%s: %w", r.sku, r.movType, err)
		}
		res.Movements++
	}
	return nil
}

func (s *Seeder) seedCases(items map[string]*entity.InventoryItem, res *Result) error {
	now := time.Now()

	alerts := []*entity.LossAlert{
		{
			ItemID:        items["ELEC-1003"].ID,
			SKU:           "ELEC-1003",
			Severity:      entity.AlertSeverityHigh,
			Description:   "Discrepancia de conteo recurrente en memorias SD",
			Status:        entity.AlertStatusActive,
			EstimatedLoss: decimal.NewFromFloat(65.70),
		},
		{
			ItemID:        items["BELL-4001"].ID,
			SKU:           "BELL-4001",
			Severity:      entity.AlertSeverityMedium,
			Description:   "Patrón de robo en perfumería, pasillo 4",
			Status:        entity.AlertStatusActive,
			EstimatedLoss: decimal.NewFromFloat(300.00),
		},
		{
			ItemID:        items["HOGA-5002"].ID,
			SKU:           "HOGA-5002",
			Severity:      entity.AlertSeverityLow,
			Description:   "Daño recurrente en lámparas durante reposición",
			Status:        entity.AlertStatusResolved,
			EstimatedLoss: decimal.NewFromFloat(137.00),
		},
	}
	resolved := now.AddDate(0, 0, -1)
	for i, a := range alerts {
		a.ID = uuid.NewString()
		a.CreatedAt = now.AddDate(0, 0, -(i + 2))
		if a.Status == entity.AlertStatusResolved {
			a.ResolvedAt = &resolved
		}
		if err := s.alertRepo.Create(a); err != nil {
			return fmt.Errorf("seed: crear alerta %s: %w", a.SKU, err)
		}
		res.Alerts++
	}

	completed := now.AddDate(0, 0, -6)
	audits := []*entity.Audit{
		{
			ID:            uuid.NewString(),
			Department:    "Electrónica",
			Auditor:       "Ana Torres",
			ScheduledDate: now.AddDate(0, 0, 3),
			Status:        entity.AuditStatusScheduled,
			CreatedAt:     now,
		},
		{
			ID:                 uuid.NewString(),
			Department:         "Belleza",
			Auditor:            "Carlos Pérez",
			ScheduledDate:      now.AddDate(0, 0, -7),
			Status:             entity.AuditStatusCompleted,
			ItemsAudited:       42,
			DiscrepanciesFound: 3,
			Notes:              "Faltantes concentrados en fragancias de alto valor",
			CreatedAt:          now.AddDate(0, 0, -10),
			CompletedAt:        &completed,
		},
	}
	for _, a := range audits {
		if err := s.auditRepo.Create(a); err != nil {
			return fmt.Errorf("seed: crear auditoría %s: %w", a.Department, err)
		}
		res.Audits++
	}

	alertID := alerts[1].ID
	invs := []*entity.Investigation{
		{
			ID:            uuid.NewString(),
			AlertID:       &alertID,
			Title:         "Robo sistemático en perfumería",
			Department:    "Belleza",
			Investigator:  "Lucía Gómez",
			Status:        entity.InvestigationStatusOpen,
			Priority:      entity.InvestigationPriorityHigh,
			EstimatedLoss: decimal.NewFromFloat(300.00),
			Notes:         "Cuatro unidades sustraídas en dos semanas; revisar cámaras del pasillo 4",
			OpenedAt:      now.AddDate(0, 0, -4),
		},
		{
			ID:            uuid.NewString(),
			Title:         "Merma de electrónica menor",
			Department:    "Electrónica",
			Investigator:  "Jorge Díaz",
			Status:        entity.InvestigationStatusInReview,
			Priority:      entity.InvestigationPriorityMedium,
			EstimatedLoss: decimal.NewFromFloat(134.70),
			Notes:         "Memorias SD y cargadores; posible error de recepción",
			OpenedAt:      now.AddDate(0, 0, -9),
		},
	}
	for _, inv := range invs {
		if err := s.invRepo.Create(inv); err != nil {
			return fmt.Errorf("seed: crear investigación %q: %w", inv.Title, err)
		}
		res.Investigations++
	}

	risks := []*entity.HighRiskItem{
		{
			ID:        uuid.NewString(),
			ItemID:    items["BELL-4001"].ID,
			SKU:       "BELL-4001",
			RiskScore: 87,
			RiskFactors: []string{
				"Alto valor unitario",
				"Robos registrados en los últimos 30 días",
				"Exhibición en pasillo abierto",
			},
			RecommendedActions: []string{
				"Mover a vitrina con llave",
				"Aumentar frecuencia de conteo cíclico",
			},
			UpdatedAt: now,
		},
		{
			ID:        uuid.NewString(),
			ItemID:    items["ELEC-1001"].ID,
			SKU:       "ELEC-1001",
			RiskScore: 64,
			RiskFactors: []string{
				"Alto valor unitario",
				"Empaque pequeño fácil de ocultar",
			},
			RecommendedActions: []string{
				"Colocar etiquetas antirrobo",
			},
			UpdatedAt: now,
		},
	}
	for _, r := range risks {
		if err := s.riskRepo.Upsert(r); err != nil {
			return fmt.Errorf("seed: crear riesgo %s: %w", r.SKU, err)
		}
		res.HighRiskItems++
	}
	return nil
}
