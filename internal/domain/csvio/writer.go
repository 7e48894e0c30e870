package csvio

import (
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/merma-api/internal/domain/entity"
)

// Formatos de fecha: ISO-8601 al exportar; MM/DD/YYYY se acepta además en
// entrada manual e importación (ver ParseDate).
const (
	ExportDateLayout = "2006-01-02"
	ManualDateLayout = "01/02/2006"
)

// ParseDate interpreta una fecha opaca de CSV o entrada manual.
// Acepta ISO-8601 (fecha o timestamp RFC3339) y MM/DD/YYYY.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{ExportDateLayout, time.RFC3339, ManualDateLayout} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatItems serializa los artículos con las columnas CSV históricas
// (item_quantity/item_status). lastUpdated sale en RFC3339.
func FormatItems(items []*entity.InventoryItem) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(ItemColumns)
	for _, it := range items {
		_ = w.Write([]string{
			it.SKU,
			it.Name,
			it.Department,
			strconv.Itoa(it.Quantity),
			string(it.Status),
			it.LastUpdated.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	return sb.String()
}

// FormatMovements serializa el log de movimientos. El empleado ausente sale
// como el centinela "System"; la fecha en ISO-8601.
func FormatMovements(movs []*entity.StockMovement) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	_ = w.Write(MovementColumns)
	for _, m := range movs {
		_ = w.Write([]string{
			m.SKU,
			string(m.Type),
			strconv.Itoa(m.Quantity),
			m.Actor(),
			m.Date.UTC().Format(ExportDateLayout),
		})
	}
	w.Flush()
	return sb.String()
}
