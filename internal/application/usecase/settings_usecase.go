package usecase

import (
	"time"

	"github.com/jhoicas/merma-api/internal/application/dto"
	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

// SettingsUseCase perfil y preferencias del usuario. Cuando el usuario aún
// no tiene fila se devuelven valores por defecto sin error.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

func defaultSettings(userID string) *entity.UserSettings {
	return &entity.UserSettings{
		UserID:         userID,
		Notifications:  true,
		AlertThreshold: 5,
		Theme:          "light",
		Language:       "es",
	}
}

// GetProfile devuelve el perfil del usuario (vacío si no existe todavía).
func (uc *SettingsUseCase) GetProfile(userID string) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.UserProfile{UserID: userID}
	}
	return toProfileResponse(profile), nil
}

// UpdateProfile actualiza (o crea) el perfil del usuario.
func (uc *SettingsUseCase) UpdateProfile(userID string, in dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	profile, err := uc.repo.GetProfile(userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.UserProfile{UserID: userID}
	}
	if in.FullName != nil {
		profile.FullName = *in.FullName
	}
	if in.Phone != nil {
		profile.Phone = *in.Phone
	}
	if in.Department != nil {
		profile.Department = *in.Department
	}
	profile.UpdatedAt = time.Now()
	if err := uc.repo.UpsertProfile(profile); err != nil {
		return nil, err
	}
	return toProfileResponse(profile), nil
}

// GetSettings devuelve las preferencias del usuario (defaults si no existen).
func (uc *SettingsUseCase) GetSettings(userID string) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.GetSettings(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = defaultSettings(userID)
	}
	return toSettingsResponse(settings), nil
}

// UpdateSettings actualiza (o crea) las preferencias del usuario.
func (uc *SettingsUseCase) UpdateSettings(userID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.GetSettings(userID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = defaultSettings(userID)
	}
	if in.Notifications != nil {
		settings.Notifications = *in.Notifications
	}
	if in.AlertThreshold != nil {
		settings.AlertThreshold = *in.AlertThreshold
	}
	if in.Theme != nil {
		settings.Theme = *in.Theme
	}
	if in.Language != nil {
		settings.Language = *in.Language
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.UpsertSettings(settings); err != nil {
		return nil, err
	}
	return toSettingsResponse(settings), nil
}

func toProfileResponse(p *entity.UserProfile) *dto.ProfileResponse {
	return &dto.ProfileResponse{
		UserID:     p.UserID,
		FullName:   p.FullName,
		Phone:      p.Phone,
		Department: p.Department,
		UpdatedAt:  p.UpdatedAt,
	}
}

func toSettingsResponse(s *entity.UserSettings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		UserID:         s.UserID,
		Notifications:  s.Notifications,
		AlertThreshold: s.AlertThreshold,
		Theme:          s.Theme,
		Language:       s.Language,
		UpdatedAt:      s.UpdatedAt,
	}
}
