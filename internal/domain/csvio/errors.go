package csvio

import (
	"fmt"
	"strings"
)

// MissingColumnsError la cabecera no trae una o más columnas requeridas.
// Columns conserva el orden canónico de la definición, no el del archivo.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("importación CSV: columnas faltantes: %s", strings.Join(e.Columns, ", "))
}

// UnknownSKUError una fila de movimiento referencia un SKU que no existe en
// el catálogo. Aborta el lote completo; SKU y Line señalan la primera fila
// ofensora (Line cuenta desde 1 incluyendo la cabecera).
type UnknownSKUError struct {
	SKU  string
	Line int
}

func (e *UnknownSKUError) Error() string {
	return fmt.Sprintf("importación CSV: SKU desconocido %q en línea %d", e.SKU, e.Line)
}

// MalformedRowError una fila no coincide en número de columnas con la
// cabecera. Política única para ambas variantes de importación: el lote
// entero se rechaza, nunca se importa parcial.
type MalformedRowError struct {
	Line     int
	Got      int
	Expected int
}

func (e *MalformedRowError) Error() string {
	return fmt.Sprintf("importación CSV: fila %d tiene %d columnas, se esperaban %d", e.Line, e.Got, e.Expected)
}
