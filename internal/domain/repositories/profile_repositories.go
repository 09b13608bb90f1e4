package repositories

import (
	"context"

	"github.com/google/uuid"
	"finuel.backend/internal/domain/entities"
)

// SettingsRepository defines per-user settings operations
type SettingsRepository interface {
	Get(ctx context.Context, userID uuid.UUID) (*entities.Settings, error)
	Upsert(ctx context.Context, userID uuid.UUID, input *entities.UpdateSettingsInput) (*entities.Settings, error)
}

// KYCRepository defines identity-verification record operations
type KYCRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYC, error)
	Upsert(ctx context.Context, kyc *entities.KYC) error
}

// EmploymentRepository defines employment-information record operations
type EmploymentRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.EmploymentInformation, error)
	Upsert(ctx context.Context, info *entities.EmploymentInformation) error
}

// LoanRepository exposes the loan reads needed for eligibility checks
type LoanRepository interface {
	HasActiveLoan(ctx context.Context, userID uuid.UUID) (bool, error)
}

// PushTokenRepository manages registered push-notification device tokens
type PushTokenRepository interface {
	Add(ctx context.Context, userID uuid.UUID, token string) error
	Remove(ctx context.Context, userID uuid.UUID, token string) error
	Clear(ctx context.Context, userID uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID) ([]string, error)
}
