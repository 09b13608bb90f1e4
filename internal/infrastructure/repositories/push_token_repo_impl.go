package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"finuel.backend/internal/infrastructure/models"
)

// PushTokenRepository implements device-token storage
type PushTokenRepository struct {
	db *gorm.DB
}

// NewPushTokenRepository creates a new push token repository
func NewPushTokenRepository(db *gorm.DB) *PushTokenRepository {
	return &PushTokenRepository{db: db}
}

// Add registers a device token; re-registering the same token is a no-op.
func (r *PushTokenRepository) Add(ctx context.Context, userID uuid.UUID, token string) error {
	m := &models.PushToken{
		ID:     uuid.New(),
		UserID: userID,
		Token:  token,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "token"}},
			DoNothing: true,
		}).
		Create(m).Error
}

// Remove unregisters a single device token
func (r *PushTokenRepository) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		Delete(&models.PushToken{}).Error
}

// Clear unregisters all of the user's device tokens
func (r *PushTokenRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&models.PushToken{}).Error
}

// List returns the user's registered device tokens
func (r *PushTokenRepository) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var tokens []string
	err := r.db.WithContext(ctx).
		Model(&models.PushToken{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("token", &tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}
