package repositories

import (
	"context"

	"github.com/google/uuid"
	"finuel.backend/internal/domain/entities"
)

// UserRepository defines user data operations. Create and Update translate
// storage uniqueness conflicts into ErrEmailInUse / ErrPhoneInUse /
// ErrUsernameInUse (first match wins in that order).
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
}

// OTPRepository defines verification-code operations. Upsert atomically
// replaces any prior active code for the same (user, type).
type OTPRepository interface {
	Upsert(ctx context.Context, otp *entities.OTP) error
	GetActive(ctx context.Context, userID uuid.UUID, otpType entities.OTPType) (*entities.OTP, error)
	Delete(ctx context.Context, userID uuid.UUID, otpType entities.OTPType) error
}
