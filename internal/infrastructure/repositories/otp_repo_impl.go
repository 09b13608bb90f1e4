package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/infrastructure/models"
)

// OTPRepository implements verification-code storage
type OTPRepository struct {
	db *gorm.DB
}

// NewOTPRepository creates a new OTP repository
func NewOTPRepository(db *gorm.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Upsert stores a code for (user, type), replacing any prior one in a single
// conditional upsert so the one-active-code invariant holds under concurrent
// issuance.
func (r *OTPRepository) Upsert(ctx context.Context, otp *entities.OTP) error {
	if otp.ID == uuid.Nil {
		otp.ID = uuid.New()
	}
	if otp.CreatedAt.IsZero() {
		otp.CreatedAt = time.Now()
	}

	m := &models.OTP{
		ID:        otp.ID,
		UserID:    otp.UserID,
		Type:      string(otp.Type),
		CodeHash:  otp.CodeHash,
		ExpiresAt: otp.ExpiresAt,
		CreatedAt: otp.CreatedAt,
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}},
			DoUpdates: clause.AssignmentColumns([]string{"code_hash", "expires_at", "created_at"}),
		}).
		Create(m).Error
}

// GetActive returns the unexpired code for (user, type), if any.
func (r *OTPRepository) GetActive(ctx context.Context, userID uuid.UUID, otpType entities.OTPType) (*entities.OTP, error) {
	var m models.OTP
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND type = ? AND expires_at > ?", userID, string(otpType), time.Now()).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}

	return &entities.OTP{
		ID:        m.ID,
		UserID:    m.UserID,
		Type:      entities.OTPType(m.Type),
		CodeHash:  m.CodeHash,
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}, nil
}

// Delete removes the user's codes of the given type. Used to consume a code
// after successful verification.
func (r *OTPRepository) Delete(ctx context.Context, userID uuid.UUID, otpType entities.OTPType) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, string(otpType)).
		Delete(&models.OTP{}).Error
}
