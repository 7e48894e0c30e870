// Package csvio convierte texto delimitado en registros validados de
// movimientos y artículos, y genera las exportaciones correspondientes.
// Todo es puro: mismo input, mismo output, sin tocar almacenamiento.
package csvio

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// Columnas reconocidas por cada variante. El orden aquí es el canónico para
// exportación y para reportar columnas faltantes; en la cabecera de entrada
// pueden venir en cualquier orden.
var (
	MovementColumns = []string{"sku", "type", "quantity", "employee", "date"}
	ItemColumns     = []string{"sku", "name", "department", "item_quantity", "item_status", "lastUpdated"}
)

// ParsedMovement fila de movimiento ya zipeada contra la cabecera.
// Quantity queda en 0 si el campo no era numérico: la validación de
// reconciliación lo rechaza después (no es responsabilidad del parser).
// Date pasa como string opaco; lo interpreta la capa de aplicación.
type ParsedMovement struct {
	SKU      string
	Type     string
	Quantity int
	Employee string
	Date     string
}

// ParsedItem fila de artículo importada. item_quantity/item_status son la
// forma CSV histórica; el dominio usa Quantity/Status como forma canónica y
// este es el único punto de mapeo.
type ParsedItem struct {
	SKU         string
	Name        string
	Department  string
	Quantity    int
	Status      string
	LastUpdated string
}

// ParseMovements parsea el CSV de movimientos contra el conjunto de SKUs
// conocidos. Falla el lote completo con MissingColumnsError, MalformedRowError
// o UnknownSKUError (primera fila ofensora); nunca importa parcial. El orden
// de salida es el orden de las filas de entrada.
func ParseMovements(raw string, knownSKUs map[string]struct{}) ([]ParsedMovement, error) {
	rows, idx, err := readRows(raw, MovementColumns)
	if err != nil {
		return nil, err
	}
	out := make([]ParsedMovement, 0, len(rows))
	for _, r := range rows {
		sku := strings.TrimSpace(r.fields[idx["sku"]])
		if _, ok := knownSKUs[sku]; !ok {
			return nil, &UnknownSKUError{SKU: sku, Line: r.line}
		}
		qty, _ := strconv.Atoi(strings.TrimSpace(r.fields[idx["quantity"]]))
		out = append(out, ParsedMovement{
			SKU:      sku,
			Type:     strings.TrimSpace(r.fields[idx["type"]]),
			Quantity: qty,
			Employee: strings.TrimSpace(r.fields[idx["employee"]]),
			Date:     strings.TrimSpace(r.fields[idx["date"]]),
		})
	}
	return out, nil
}

// ParseItems parsea el CSV de artículos. Misma política de lote que
// ParseMovements: cualquier error estructural rechaza el archivo entero.
func ParseItems(raw string) ([]ParsedItem, error) {
	rows, idx, err := readRows(raw, ItemColumns)
	if err != nil {
		return nil, err
	}
	out := make([]ParsedItem, 0, len(rows))
	for _, r := range rows {
		qty, _ := strconv.Atoi(strings.TrimSpace(r.fields[idx["item_quantity"]]))
		out = append(out, ParsedItem{
			SKU:         strings.TrimSpace(r.fields[idx["sku"]]),
			Name:        strings.TrimSpace(r.fields[idx["name"]]),
			Department:  strings.TrimSpace(r.fields[idx["department"]]),
			Quantity:    qty,
			Status:      strings.TrimSpace(r.fields[idx["item_status"]]),
			LastUpdated: strings.TrimSpace(r.fields[idx["lastUpdated"]]),
		})
	}
	return out, nil
}

type rawRow struct {
	line   int
	fields []string
}

// readRows lee cabecera + filas y arma el índice columna→posición.
// La cabecera admite columnas en cualquier orden; las extra se ignoran.
func readRows(raw string, required []string) ([]rawRow, map[string]int, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1 // la validación de conteo es nuestra, con número de línea
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, &MalformedRowError{Line: 0, Got: 0, Expected: len(required)}
	}
	if len(records) == 0 {
		return nil, nil, &MissingColumnsError{Columns: required}
	}

	header := records[0]
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	var missing []string
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, nil, &MissingColumnsError{Columns: missing}
	}

	rows := make([]rawRow, 0, len(records)-1)
	for i, rec := range records[1:] {
		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue // línea en blanco
		}
		line := i + 2 // 1-based, contando la cabecera
		if len(rec) != len(header) {
			return nil, nil, &MalformedRowError{Line: line, Got: len(rec), Expected: len(header)}
		}
		rows = append(rows, rawRow{line: line, fields: rec})
	}
	return rows, idx, nil
}
