package entity

import "time"

// UserProfile datos de perfil visibles del usuario (separados de User para
// no arrastrar el hash de password por la capa HTTP).
type UserProfile struct {
	UserID     string
	FullName   string
	Phone      string
	Department string
	UpdatedAt  time.Time
}

// UserSettings preferencias del usuario para el dashboard.
type UserSettings struct {
	UserID         string
	Notifications  bool
	AlertThreshold int    // cantidad mínima antes de considerar stock bajo
	Theme          string // light | dark
	Language       string // es | en
	UpdatedAt      time.Time
}
