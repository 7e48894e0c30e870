// Package inventory contiene la lógica pura de reconciliación de cantidades:
// cómo un movimiento transforma la cantidad en mano de un artículo.
package inventory

import (
	"fmt"

	"github.com/jhoicas/merma-api/internal/domain"
	"github.com/jhoicas/merma-api/internal/domain/entity"
)

// ApplyMovement aplica un movimiento a la cantidad actual y devuelve la nueva
// cantidad en mano (servicio de dominio, sin efectos).
//
// Tabla de política por tipo:
//
//	received   → current + qty
//	sold       → current - qty, recortado en 0
//	damaged    → current - qty, recortado en 0
//	stolen     → current - qty, recortado en 0
//	adjustment → qty (valor absoluto, ignora current)
//
// Un resultado negativo nunca se devuelve ni se rechaza: se recorta en cero.
// Es política deliberada del negocio, no un error.
func ApplyMovement(current int, movType entity.MovementType, qty int) (int, error) {
	if qty <= 0 {
		return 0, fmt.Errorf("%w: cantidad debe ser positiva, recibido %d", domain.ErrInvalidMovement, qty)
	}
	switch movType {
	case entity.MovementReceived:
		return current + qty, nil
	case entity.MovementSold, entity.MovementDamaged, entity.MovementStolen:
		next := current - qty
		if next < 0 {
			return 0, nil
		}
		return next, nil
	case entity.MovementAdjustment:
		return qty, nil
	}
	return 0, fmt.Errorf("%w: tipo desconocido %q", domain.ErrInvalidMovement, movType)
}
