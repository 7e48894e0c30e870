package inventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/merma-api/internal/application/dto"
	appinv "github.com/jhoicas/merma-api/internal/application/inventory"
	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/csvio"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria: repos + TxRunner con semántica de rollback (si fn falla,
// se restaura el estado previo, igual que la transacción real de PostgreSQL).
// ──────────────────────────────────────────────────────────────────────────────

type fakeItemRepo struct {
	bySKU map[string]*entity.InventoryItem
}

func newFakeItemRepo(items ...*entity.InventoryItem) *fakeItemRepo {
	r := &fakeItemRepo{bySKU: make(map[string]*entity.InventoryItem)}
	for _, it := range items {
		cp := *it
		r.bySKU[it.SKU] = &cp
	}
	return r
}

func (r *fakeItemRepo) Create(item *entity.InventoryItem) error {
	cp := *item
	r.bySKU[item.SKU] = &cp
	return nil
}

func (r *fakeItemRepo) GetByID(id string) (*entity.InventoryItem, error) {
	for _, it := range r.bySKU {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeItemRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	it, ok := r.bySKU[sku]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (r *fakeItemRepo) GetBySKUForUpdate(sku string) (*entity.InventoryItem, error) {
	return r.GetBySKU(sku)
}

func (r *fakeItemRepo) Update(item *entity.InventoryItem) error {
	cp := *item
	r.bySKU[item.SKU] = &cp
	return nil
}

func (r *fakeItemRepo) UpdateQuantity(itemID string, quantity int, at time.Time) error {
	for _, it := range r.bySKU {
		if it.ID == itemID {
			it.Quantity = quantity
			it.LastUpdated = at
			return nil
		}
	}
	return domain.ErrItemNotFound
}

func (r *fakeItemRepo) UpsertBySKU(item *entity.InventoryItem) error {
	if prev, ok := r.bySKU[item.SKU]; ok {
		item.ID = prev.ID
	}
	cp := *item
	r.bySKU[item.SKU] = &cp
	return nil
}

func (r *fakeItemRepo) List(_ repository.ItemFilter, _, _ int) ([]*entity.InventoryItem, error) {
	return r.ListAll()
}

func (r *fakeItemRepo) ListAll() ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.bySKU))
	for _, it := range r.bySKU {
		cp := *it
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeItemRepo) ListSKUs() ([]string, error) {
	out := make([]string, 0, len(r.bySKU))
	for sku := range r.bySKU {
		out = append(out, sku)
	}
	return out, nil
}

func (r *fakeItemRepo) Delete(id string) error { return nil }

func (r *fakeItemRepo) Count(_ repository.ItemFilter) (int, error) { return len(r.bySKU), nil }

type fakeMovRepo struct {
	movs []*entity.StockMovement
}

func (r *fakeMovRepo) Create(m *entity.StockMovement) error {
	cp := *m
	r.movs = append(r.movs, &cp)
	return nil
}

func (r *fakeMovRepo) GetByID(id string) (*entity.StockMovement, error) { return nil, nil }

func (r *fakeMovRepo) ListByItem(_ string, _, _ int) ([]*entity.StockMovement, error) {
	return r.movs, nil
}

func (r *fakeMovRepo) List(_, _ *time.Time, _, _ int) ([]*entity.StockMovement, error) {
	return r.movs, nil
}

func (r *fakeMovRepo) ListAll() ([]*entity.StockMovement, error) { return r.movs, nil }

type fakeTxRunner struct {
	items *fakeItemRepo
	movs  *fakeMovRepo
}

// Run simula Begin/Commit/Rollback: si fn devuelve error, el estado de los
// fakes se restaura al snapshot previo.
func (t *fakeTxRunner) Run(_ context.Context, fn func(repository.MovementRepository, repository.ItemRepository) error) error {
	snapItems := make(map[string]*entity.InventoryItem, len(t.items.bySKU))
	for k, v := range t.items.bySKU {
		cp := *v
		snapItems[k] = &cp
	}
	snapMovs := make([]*entity.StockMovement, len(t.movs.movs))
	copy(snapMovs, t.movs.movs)

	if err := fn(t.movs, t.items); err != nil {
		t.items.bySKU = snapItems
		t.movs.movs = snapMovs
		return err
	}
	return nil
}

func setup(items ...*entity.InventoryItem) (*appinv.RegisterMovementUseCase, *appinv.ImportExportUseCase, *fakeItemRepo, *fakeMovRepo) {
	itemRepo := newFakeItemRepo(items...)
	movRepo := &fakeMovRepo{}
	tx := &fakeTxRunner{items: itemRepo, movs: movRepo}
	return appinv.NewRegisterMovementUseCase(tx), appinv.NewImportExportUseCase(tx, itemRepo, movRepo), itemRepo, movRepo
}

func itemSKU1(qty int) *entity.InventoryItem {
	return &entity.InventoryItem{
		ID:       "item-1",
		SKU:      "SKU-1",
		Name:     "Audífonos BT",
		Quantity: qty,
		Status:   entity.StatusInStock,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// RegisterMovement
// ──────────────────────────────────────────────────────────────────────────────

// Escenario A: SKU-1 con 10 unidades recibe 5 → queda en 15 y el log gana
// exactamente una entrada received/5.
func TestRegisterMovement_Received(t *testing.T) {
	uc, _, itemRepo, movRepo := setup(itemSKU1(10))

	res, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		SKU: "SKU-1", Type: "received", Quantity: 5, Employee: "John",
	})
	require.NoError(t, err)
	assert.Equal(t, 15, res.NewQuantity)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 15, it.Quantity)
	require.Len(t, movRepo.movs, 1)
	assert.Equal(t, entity.MovementReceived, movRepo.movs[0].Type)
	assert.Equal(t, 5, movRepo.movs[0].Quantity)
}

// Escenario B: vender 15 con 10 en mano recorta en cero, no en negativo.
func TestRegisterMovement_SoldRecortaEnCero(t *testing.T) {
	uc, _, itemRepo, _ := setup(itemSKU1(10))

	res, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		SKU: "SKU-1", Type: "sold", Quantity: 15,
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.NewQuantity)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 0, it.Quantity)
}

// adjustment fija la cantidad en valor absoluto.
func TestRegisterMovement_Adjustment(t *testing.T) {
	uc, _, itemRepo, _ := setup(itemSKU1(10))

	res, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		SKU: "SKU-1", Type: "adjustment", Quantity: 3,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, res.NewQuantity)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 3, it.Quantity)
}

// SKU inexistente: falla con ErrItemNotFound y NO queda ninguna escritura
// (ni movimiento ni cantidad): la operación es atómica.
func TestRegisterMovement_ItemNotFoundEsAtomico(t *testing.T) {
	uc, _, itemRepo, movRepo := setup(itemSKU1(10))

	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{
		SKU: "NO-EXISTE", Type: "received", Quantity: 5,
	})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)
	assert.Empty(t, movRepo.movs)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 10, it.Quantity)
}

// Cantidad y tipo inválidos se rechazan antes de tocar la transacción.
func TestRegisterMovement_Invalido(t *testing.T) {
	uc, _, _, movRepo := setup(itemSKU1(10))

	_, err := uc.RegisterMovement(context.Background(), appinv.MovementInput{SKU: "SKU-1", Type: "received", Quantity: 0})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)

	_, err = uc.RegisterMovement(context.Background(), appinv.MovementInput{SKU: "SKU-1", Type: "transfer", Quantity: 5})
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)

	assert.Empty(t, movRepo.movs)
}

// FromRequest interpreta fechas MM/DD/YYYY y rechaza las no reconocidas.
func TestRegisterMovementFromRequest_Fecha(t *testing.T) {
	uc, _, _, movRepo := setup(itemSKU1(10))

	res, err := uc.RegisterMovementFromRequest(context.Background(), "user-1", dto.RegisterMovementRequest{
		SKU: "SKU-1", Type: "sold", Quantity: 2, Date: "04/10/2024",
	})
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), res.Movement.Date)
	require.Len(t, movRepo.movs, 1)

	_, err = uc.RegisterMovementFromRequest(context.Background(), "user-1", dto.RegisterMovementRequest{
		SKU: "SKU-1", Type: "sold", Quantity: 2, Date: "ayer",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Importación CSV
// ──────────────────────────────────────────────────────────────────────────────

// Escenario C: un SKU fuera de catálogo aborta el lote entero: cero
// movimientos importados, cantidades intactas.
func TestImportMovements_SKUDesconocidoAbortaLote(t *testing.T) {
	_, impUC, itemRepo, movRepo := setup(itemSKU1(10))

	raw := "sku,type,quantity,employee,date\n" +
		"SKU-1,received,5,John,04/10/2024\n" +
		"BAD-SKU,received,5,John,04/10/2024\n"

	n, err := impUC.ImportMovements(context.Background(), raw)
	var unknown *csvio.UnknownSKUError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "BAD-SKU", unknown.SKU)
	assert.Zero(t, n)
	assert.Empty(t, movRepo.movs)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 10, it.Quantity)
}

// Importación válida: aplica en orden de fila dentro de una transacción.
func TestImportMovements_OK(t *testing.T) {
	_, impUC, itemRepo, movRepo := setup(itemSKU1(10))

	raw := "sku,type,quantity,employee,date\n" +
		"SKU-1,received,5,John,2024-04-10\n" +
		"SKU-1,stolen,2,,2024-04-11\n"

	n, err := impUC.ImportMovements(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	require.Len(t, movRepo.movs, 2)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 13, it.Quantity) // 10 +5 -2
}

// Cantidad no numérica pasó el parse como 0 y cae aquí como movimiento
// inválido; el lote entero se rechaza.
func TestImportMovements_CantidadNoNumericaRechazaLote(t *testing.T) {
	_, impUC, itemRepo, movRepo := setup(itemSKU1(10))

	raw := "sku,type,quantity,employee,date\n" +
		"SKU-1,received,cinco,John,2024-04-10\n"

	n, err := impUC.ImportMovements(context.Background(), raw)
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)
	assert.Zero(t, n)
	assert.Empty(t, movRepo.movs)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 10, it.Quantity)
}

// Importación de artículos: upsert por SKU, estado validado contra el enum.
func TestImportItems_OK(t *testing.T) {
	_, impUC, itemRepo, _ := setup(itemSKU1(10))

	raw := "sku,name,department,item_quantity,item_status,lastUpdated\n" +
		"SKU-1,Audífonos BT,Electrónica,25,In Stock,2024-03-01\n" +
		"SKU-2,Perfume,Belleza,4,Low Stock,2024-03-01\n"

	n, err := impUC.ImportItems(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 25, it.Quantity)
	it2, _ := itemRepo.GetBySKU("SKU-2")
	require.NotNil(t, it2)
	assert.Equal(t, entity.StatusLowStock, it2.Status)
}

// Estado fuera del enum rechaza el lote entero (sin upserts parciales).
func TestImportItems_EstadoInvalidoRechazaLote(t *testing.T) {
	_, impUC, itemRepo, _ := setup(itemSKU1(10))

	raw := "sku,name,department,item_quantity,item_status,lastUpdated\n" +
		"SKU-2,Perfume,Belleza,4,Disponible,2024-03-01\n"

	n, err := impUC.ImportItems(context.Background(), raw)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, n)

	it2, _ := itemRepo.GetBySKU("SKU-2")
	assert.Nil(t, it2)
}

// Exportar e importar de vuelta conserva {sku, cantidad, estado}.
func TestExportItems_RoundTrip(t *testing.T) {
	_, impUC, itemRepo, _ := setup(itemSKU1(10))

	out, err := impUC.ExportItems(context.Background())
	require.NoError(t, err)

	n, err := impUC.ImportItems(context.Background(), out)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	it, _ := itemRepo.GetBySKU("SKU-1")
	assert.Equal(t, 10, it.Quantity)
	assert.Equal(t, entity.StatusInStock, it.Status)
}
