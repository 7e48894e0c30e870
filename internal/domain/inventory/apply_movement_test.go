package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/inventory"
)

// TestApplyMovement_TablaPolitica recorre la tabla completa de tipos con
// cantidades representativas. Es el contrato central del sistema: si alguien
// toca una rama del switch, este test lo detecta de inmediato.
func TestApplyMovement_TablaPolitica(t *testing.T) {
	tests := []struct {
		name    string
		current int
		movType entity.MovementType
		qty     int
		want    int
	}{
		{"received suma", 10, entity.MovementReceived, 5, 15},
		{"received desde cero", 0, entity.MovementReceived, 3, 3},
		{"sold resta", 10, entity.MovementSold, 4, 6},
		{"sold exacto deja cero", 10, entity.MovementSold, 10, 0},
		{"sold recorta en cero", 10, entity.MovementSold, 15, 0},
		{"sold sobre cero queda cero", 0, entity.MovementSold, 5, 0},
		{"damaged resta", 8, entity.MovementDamaged, 3, 5},
		{"damaged recorta en cero", 2, entity.MovementDamaged, 9, 0},
		{"stolen resta", 7, entity.MovementStolen, 2, 5},
		{"stolen recorta en cero", 1, entity.MovementStolen, 100, 0},
		{"adjustment reemplaza", 10, entity.MovementAdjustment, 42, 42},
		{"adjustment ignora current", 0, entity.MovementAdjustment, 7, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inventory.ApplyMovement(tt.current, tt.movType, tt.qty)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestApplyMovement_NuncaNegativo verifica la invariante de recorte: ningún
// tipo de salida puede dejar la cantidad por debajo de cero.
func TestApplyMovement_NuncaNegativo(t *testing.T) {
	for _, movType := range []entity.MovementType{entity.MovementSold, entity.MovementDamaged, entity.MovementStolen} {
		for _, qty := range []int{1, 5, 50, 1000} {
			got, err := inventory.ApplyMovement(3, movType, qty)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, got, 0, "tipo %s qty %d", movType, qty)
		}
	}
}

// TestApplyMovement_CantidadInvalida cantidad cero o negativa es rechazada en
// validación (ErrInvalidMovement), nunca aplicada en silencio.
func TestApplyMovement_CantidadInvalida(t *testing.T) {
	for _, qty := range []int{0, -1, -50} {
		_, err := inventory.ApplyMovement(10, entity.MovementReceived, qty)
		assert.ErrorIs(t, err, domain.ErrInvalidMovement, "qty %d", qty)
	}
}

// TestApplyMovement_TipoDesconocido un tipo fuera del enum es un fallo de
// validación reportado al caller, no ignorado.
func TestApplyMovement_TipoDesconocido(t *testing.T) {
	_, err := inventory.ApplyMovement(10, entity.MovementType("perdido"), 5)
	assert.ErrorIs(t, err, domain.ErrInvalidMovement)
}

// TestParseMovementType valida el parse del enum cerrado.
func TestParseMovementType(t *testing.T) {
	for _, s := range []string{"received", "sold", "damaged", "stolen", "adjustment"} {
		got, ok := entity.ParseMovementType(s)
		require.True(t, ok, s)
		assert.Equal(t, entity.MovementType(s), got)
	}
	for _, s := range []string{"", "RECEIVED", "venta", "transfer"} {
		_, ok := entity.ParseMovementType(s)
		assert.False(t, ok, s)
	}
}
