package dto

import "time"

// RegisterRequest entrada para registro (auth): email + password.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Name     string `json:"name" validate:"omitempty,max=200"`
	Role     string `json:"role" validate:"omitempty,oneof=admin analista"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT de sesión.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ProfileResponse perfil visible del usuario.
type ProfileResponse struct {
	UserID     string    `json:"user_id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Department string    `json:"department"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UpdateProfileRequest entrada para actualizar el perfil.
type UpdateProfileRequest struct {
	FullName   *string `json:"full_name" validate:"omitempty,max=200"`
	Phone      *string `json:"phone" validate:"omitempty,max=40"`
	Department *string `json:"department" validate:"omitempty,max=100"`
}

// SettingsResponse preferencias del usuario.
type SettingsResponse struct {
	UserID         string    `json:"user_id"`
	Notifications  bool      `json:"notifications"`
	AlertThreshold int       `json:"alert_threshold"`
	Theme          string    `json:"theme"`
	Language       string    `json:"language"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// UpdateSettingsRequest entrada para actualizar preferencias.
type UpdateSettingsRequest struct {
	Notifications  *bool   `json:"notifications"`
	AlertThreshold *int    `json:"alert_threshold" validate:"omitempty,min=0"`
	Theme          *string `json:"theme" validate:"omitempty,oneof=light dark"`
	Language       *string `json:"language" validate:"omitempty,oneof=es en"`
}
