package entity

import "time"

// Roles de usuario.
const (
	RoleAdmin    = "admin"
	RoleAnalista = "analista"
)

// User usuario del sistema (login email+password, hash bcrypt).
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	Role         string // admin | analista
	Status       string // active | disabled
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
