package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/merma-api/internal/domain/entity"
	"github.com/jhoicas/merma-api/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo perfil y preferencias de usuario sobre PostgreSQL. Una fila por
// usuario en cada tabla; Get* devuelven nil, nil cuando aún no hay fila.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// GetProfile obtiene el perfil del usuario.
func (r *SettingsRepo) GetProfile(userID string) (*entity.UserProfile, error) {
	query := `
		SELECT user_id, full_name, phone, department, updated_at
		FROM user_profiles WHERE user_id = $1`
	var p entity.UserProfile
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&p.UserID, &p.FullName, &p.Phone, &p.Department, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return &p, nil
}

// UpsertProfile inserta o actualiza el perfil del usuario.
func (r *SettingsRepo) UpsertProfile(profile *entity.UserProfile) error {
	query := `
		INSERT INTO user_profiles (user_id, full_name, phone, department, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			phone = EXCLUDED.phone,
			department = EXCLUDED.department,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		profile.UserID, profile.FullName, profile.Phone, profile.Department, profile.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	return nil
}

// GetSettings obtiene las preferencias del usuario.
func (r *SettingsRepo) GetSettings(userID string) (*entity.UserSettings, error) {
	query := `
		SELECT user_id, notifications, alert_threshold, theme, language, updated_at
		FROM user_settings WHERE user_id = $1`
	var s entity.UserSettings
	err := r.q.QueryRow(context.Background(), query, userID).Scan(
		&s.UserID, &s.Notifications, &s.AlertThreshold, &s.Theme, &s.Language, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// UpsertSettings inserta o actualiza las preferencias del usuario.
func (r *SettingsRepo) UpsertSettings(settings *entity.UserSettings) error {
	query := `
		INSERT INTO user_settings (user_id, notifications, alert_threshold, theme, language, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE SET
			notifications = EXCLUDED.notifications,
			alert_threshold = EXCLUDED.alert_threshold,
			theme = EXCLUDED.theme,
			language = EXCLUDED.language,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		settings.UserID, settings.Notifications, settings.AlertThreshold,
		settings.Theme, settings.Language, settings.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}
