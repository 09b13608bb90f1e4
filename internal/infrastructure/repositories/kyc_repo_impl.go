package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/infrastructure/models"
)

// KYCRepository implements identity-verification record storage
type KYCRepository struct {
	db *gorm.DB
}

// NewKYCRepository creates a new KYC repository
func NewKYCRepository(db *gorm.DB) *KYCRepository {
	return &KYCRepository{db: db}
}

// GetByUserID returns the user's KYC record
func (r *KYCRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYC, error) {
	var m models.KYC
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toKYCEntity(&m), nil
}

// Upsert creates or updates the user's KYC record
func (r *KYCRepository) Upsert(ctx context.Context, kyc *entities.KYC) error {
	m := &models.KYC{
		UserID:    kyc.UserID,
		BVN:       kyc.BVN,
		NINNumber: kyc.NINNumber,
		NINImage:  kyc.NINImage,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"bvn", "nin_number", "nin_image", "updated_at"}),
		}).
		Create(m).Error
}

func toKYCEntity(m *models.KYC) *entities.KYC {
	return &entities.KYC{
		UserID:    m.UserID,
		BVN:       m.BVN,
		NINNumber: m.NINNumber,
		NINImage:  m.NINImage,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
