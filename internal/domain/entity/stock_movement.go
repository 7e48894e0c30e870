package entity

import "time"

// Tipos de movimiento de stock (enum cerrado: el compilador y ParseMovementType
// rechazan valores fuera de la tabla; nunca strings libres).
type MovementType string

const (
	MovementReceived   MovementType = "received"   // entrada de mercancía
	MovementSold       MovementType = "sold"       // venta registrada
	MovementDamaged    MovementType = "damaged"    // merma por daño
	MovementStolen     MovementType = "stolen"     // merma por robo
	MovementAdjustment MovementType = "adjustment" // corrección absoluta de cantidad
)

// ParseMovementType valida un tipo recibido como texto (HTTP, CSV).
// Devuelve false para cualquier valor fuera de los cinco reconocidos.
func ParseMovementType(s string) (MovementType, bool) {
	t := MovementType(s)
	switch t {
	case MovementReceived, MovementSold, MovementDamaged, MovementStolen, MovementAdjustment:
		return t, true
	}
	return "", false
}

// IsLoss reporta si el tipo cuenta como merma (daño o robo).
func (t MovementType) IsLoss() bool {
	return t == MovementDamaged || t == MovementStolen
}

// EmployeeSystem es el actor centinela cuando un movimiento no tiene
// empleado asociado (importaciones, procesos automáticos).
const EmployeeSystem = "System"

// StockMovement es una entrada del log de movimientos. Append-only: una vez
// creada no se modifica ni se borra. Quantity es la magnitud positiva; la
// dirección la determina Type (salvo adjustment, que es un valor absoluto).
type StockMovement struct {
	ID        string
	ItemID    string
	SKU       string
	Type      MovementType
	Quantity  int
	Employee  string // vacío = sin actor; se presenta como EmployeeSystem
	Date      time.Time
	CreatedAt time.Time
	CreatedBy string // UserID, opcional
}

// Actor devuelve el empleado del movimiento o el centinela EmployeeSystem.
func (m *StockMovement) Actor() string {
	if m.Employee == "" {
		return EmployeeSystem
	}
	return m.Employee
}
