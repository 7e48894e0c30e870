package csvio_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/merma-api/internal/domain/csvio"
	"github.com/jhoicas/merma-api/internal/domain/entity"
)

func skus(list ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(list))
	for _, s := range list {
		m[s] = struct{}{}
	}
	return m
}

// TestParseMovements_OK parse básico: cabecera en orden canónico, dos filas.
func TestParseMovements_OK(t *testing.T) {
	raw := "sku,type,quantity,employee,date\n" +
		"SKU-1,received,5,John,04/10/2024\n" +
		"SKU-2,sold,3,,2024-04-11\n"

	out, err := csvio.ParseMovements(raw, skus("SKU-1", "SKU-2"))
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, csvio.ParsedMovement{SKU: "SKU-1", Type: "received", Quantity: 5, Employee: "John", Date: "04/10/2024"}, out[0])
	assert.Equal(t, csvio.ParsedMovement{SKU: "SKU-2", Type: "sold", Quantity: 3, Employee: "", Date: "2024-04-11"}, out[1])
}

// TestParseMovements_CabeceraEnCualquierOrden las columnas reconocidas pueden
// venir en cualquier posición; el zip es por nombre, no por índice fijo.
func TestParseMovements_CabeceraEnCualquierOrden(t *testing.T) {
	raw := "date,employee,quantity,type,sku\n" +
		"2024-01-15,Ana,7,damaged,SKU-9\n"

	out, err := csvio.ParseMovements(raw, skus("SKU-9"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "SKU-9", out[0].SKU)
	assert.Equal(t, "damaged", out[0].Type)
	assert.Equal(t, 7, out[0].Quantity)
}

// TestParseMovements_ColumnasFaltantes cabecera sin employee: el lote falla
// con MissingColumnsError nombrando exactamente la columna ausente.
func TestParseMovements_ColumnasFaltantes(t *testing.T) {
	raw := "sku,type,quantity,date\nSKU-1,received,5,04/10/2024\n"

	_, err := csvio.ParseMovements(raw, skus("SKU-1"))
	var missing *csvio.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"employee"}, missing.Columns)
}

// TestParseMovements_VariasColumnasFaltantes reporta todas las ausentes.
func TestParseMovements_VariasColumnasFaltantes(t *testing.T) {
	raw := "sku,date\nSKU-1,04/10/2024\n"

	_, err := csvio.ParseMovements(raw, skus("SKU-1"))
	var missing *csvio.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"type", "quantity", "employee"}, missing.Columns)
}

// TestParseMovements_SKUDesconocido la primera fila con SKU fuera de catálogo
// aborta el lote entero: cero registros importados.
func TestParseMovements_SKUDesconocido(t *testing.T) {
	raw := "sku,type,quantity,employee,date\n" +
		"BAD-SKU,received,5,John,04/10/2024\n"

	out, err := csvio.ParseMovements(raw, skus("SKU-1"))
	var unknown *csvio.UnknownSKUError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "BAD-SKU", unknown.SKU)
	assert.Equal(t, 2, unknown.Line)
	assert.Nil(t, out)
}

// TestParseMovements_SKUDesconocidoReportaPrimero con varias filas malas se
// reporta la primera ofensora, en orden de entrada.
func TestParseMovements_SKUDesconocidoReportaPrimero(t *testing.T) {
	raw := "sku,type,quantity,employee,date\n" +
		"SKU-1,received,5,John,04/10/2024\n" +
		"MALO-1,sold,1,Ana,04/11/2024\n" +
		"MALO-2,sold,1,Ana,04/12/2024\n"

	_, err := csvio.ParseMovements(raw, skus("SKU-1"))
	var unknown *csvio.UnknownSKUError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "MALO-1", unknown.SKU)
	assert.Equal(t, 3, unknown.Line)
}

// TestParseMovements_FilaMalFormada conteo de columnas distinto a la cabecera
// rechaza el lote (política única: nunca importación parcial).
func TestParseMovements_FilaMalFormada(t *testing.T) {
	raw := "sku,type,quantity,employee,date\n" +
		"SKU-1,received,5\n"

	_, err := csvio.ParseMovements(raw, skus("SKU-1"))
	var malformed *csvio.MalformedRowError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 2, malformed.Line)
	assert.Equal(t, 3, malformed.Got)
	assert.Equal(t, 5, malformed.Expected)
}

// TestParseMovements_CantidadNoNumerica el parser no rechaza cantidades no
// numéricas: quedan en 0 y la validación de reconciliación las rechaza después.
func TestParseMovements_CantidadNoNumerica(t *testing.T) {
	raw := "sku,type,quantity,employee,date\n" +
		"SKU-1,received,muchos,John,04/10/2024\n"

	out, err := csvio.ParseMovements(raw, skus("SKU-1"))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, 0, out[0].Quantity)
}

// TestParseMovements_OrdenEstableEIdempotente mismo input, mismo output, dos
// veces, en el mismo orden que las filas de entrada.
func TestParseMovements_OrdenEstableEIdempotente(t *testing.T) {
	raw := "sku,type,quantity,employee,date\n" +
		"SKU-3,sold,2,Ana,2024-02-01\n" +
		"SKU-1,received,9,John,2024-02-02\n" +
		"SKU-2,stolen,1,,2024-02-03\n"
	known := skus("SKU-1", "SKU-2", "SKU-3")

	first, err1 := csvio.ParseMovements(raw, known)
	second, err2 := csvio.ParseMovements(raw, known)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"SKU-3", "SKU-1", "SKU-2"}, []string{first[0].SKU, first[1].SKU, first[2].SKU})
}

// TestParseMovements_LineasEnBlanco líneas vacías entre filas se ignoran.
func TestParseMovements_LineasEnBlanco(t *testing.T) {
	raw := "sku,type,quantity,employee,date\n" +
		"SKU-1,received,5,John,2024-04-10\n" +
		"\n" +
		"SKU-1,sold,2,Ana,2024-04-11\n"

	out, err := csvio.ParseMovements(raw, skus("SKU-1"))
	require.NoError(t, err)
	assert.Len(t, out, 2)
}

// TestParseItems_OK variante de artículos con la forma CSV histórica
// item_quantity/item_status.
func TestParseItems_OK(t *testing.T) {
	raw := "sku,name,department,item_quantity,item_status,lastUpdated\n" +
		"SKU-1,Audífonos BT,Electrónica,12,In Stock,2024-03-01T10:00:00Z\n"

	out, err := csvio.ParseItems(raw)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "SKU-1", out[0].SKU)
	assert.Equal(t, "Audífonos BT", out[0].Name)
	assert.Equal(t, 12, out[0].Quantity)
	assert.Equal(t, "In Stock", out[0].Status)
}

// TestParseItems_ColumnasFaltantes misma validación de cabecera que movimientos.
func TestParseItems_ColumnasFaltantes(t *testing.T) {
	raw := "sku,name,item_quantity\nSKU-1,Algo,3\n"

	_, err := csvio.ParseItems(raw)
	var missing *csvio.MissingColumnsError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, []string{"department", "item_status", "lastUpdated"}, missing.Columns)
}

// TestRoundTrip_Items exportar e importar con el mismo catálogo reproduce las
// tuplas {sku, item_quantity, item_status}.
func TestRoundTrip_Items(t *testing.T) {
	now := time.Date(2024, 5, 2, 15, 4, 5, 0, time.UTC)
	items := []*entity.InventoryItem{
		{SKU: "SKU-1", Name: "Audífonos", Department: "Electrónica", Quantity: 12, UnitValue: decimal.NewFromInt(30), Status: entity.StatusInStock, LastUpdated: now},
		{SKU: "SKU-2", Name: "Perfume", Department: "Belleza", Quantity: 0, Status: entity.StatusOutOfStock, LastUpdated: now},
		{SKU: "SKU-3", Name: "Cuchilla", Department: "Hogar", Quantity: 3, Status: entity.StatusLowStock, LastUpdated: now},
	}

	raw := csvio.FormatItems(items)
	out, err := csvio.ParseItems(raw)
	require.NoError(t, err)
	require.Len(t, out, len(items))
	for i, it := range items {
		assert.Equal(t, it.SKU, out[i].SKU)
		assert.Equal(t, it.Quantity, out[i].Quantity)
		assert.Equal(t, string(it.Status), out[i].Status)
	}
}

// TestRoundTrip_Movements exportación de movimientos reimportable con el
// mismo conjunto de SKUs; el empleado vacío sale como "System".
func TestRoundTrip_Movements(t *testing.T) {
	date := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	movs := []*entity.StockMovement{
		{SKU: "SKU-1", Type: entity.MovementReceived, Quantity: 5, Employee: "John", Date: date},
		{SKU: "SKU-1", Type: entity.MovementStolen, Quantity: 2, Employee: "", Date: date},
	}

	raw := csvio.FormatMovements(movs)
	out, err := csvio.ParseMovements(raw, skus("SKU-1"))
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "received", out[0].Type)
	assert.Equal(t, 5, out[0].Quantity)
	assert.Equal(t, "System", out[1].Employee)
	assert.Equal(t, "2024-04-10", out[1].Date)
}

// TestParseDate acepta ISO-8601 y MM/DD/YYYY; rechaza lo demás.
func TestParseDate(t *testing.T) {
	got, ok := csvio.ParseDate("04/10/2024")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), got)

	got, ok = csvio.ParseDate("2024-04-10")
	require.True(t, ok)
	assert.Equal(t, time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC), got)

	_, ok = csvio.ParseDate("10 de abril")
	assert.False(t, ok)
}
