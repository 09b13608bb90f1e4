package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/infrastructure/models"
)

// SettingsRepository implements per-user settings storage
type SettingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

// Get returns the user's settings record
func (r *SettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*entities.Settings, error) {
	var m models.Settings
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toSettingsEntity(&m), nil
}

// Upsert creates the settings row lazily and applies only the provided fields.
func (r *SettingsRepository) Upsert(ctx context.Context, userID uuid.UUID, input *entities.UpdateSettingsInput) (*entities.Settings, error) {
	var m models.Settings
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		m = models.Settings{UserID: userID, CreatedAt: time.Now()}
	}

	if input.HasPaymentPin != nil {
		m.HasPaymentPin = *input.HasPaymentPin
	}
	if input.HasAuthenticationPin != nil {
		m.HasAuthenticationPin = *input.HasAuthenticationPin
	}
	if input.EnabledBiometrics != nil {
		m.EnabledBiometrics = *input.EnabledBiometrics
	}
	if input.EnabledNotifications != nil {
		m.EnabledNotifications = *input.EnabledNotifications
	}
	m.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Save(&m).Error; err != nil {
		return nil, err
	}
	return toSettingsEntity(&m), nil
}

func toSettingsEntity(m *models.Settings) *entities.Settings {
	return &entities.Settings{
		UserID:               m.UserID,
		HasPaymentPin:        m.HasPaymentPin,
		HasAuthenticationPin: m.HasAuthenticationPin,
		EnabledBiometrics:    m.EnabledBiometrics,
		EnabledNotifications: m.EnabledNotifications,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}
