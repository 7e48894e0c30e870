package repository

import "github.com/jhoicas/merma-api/internal/domain/entity"

// SettingsRepository puerto para perfil y preferencias del usuario.
// Get* devuelven nil sin error cuando el usuario aún no tiene fila.
type SettingsRepository interface {
	GetProfile(userID string) (*entity.UserProfile, error)
	UpsertProfile(profile *entity.UserProfile) error
	GetSettings(userID string) (*entity.UserSettings, error)
	UpsertSettings(settings *entity.UserSettings) error
}
