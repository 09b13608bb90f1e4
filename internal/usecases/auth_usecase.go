package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/domain/repositories"
	"finuel.backend/pkg/crypto"
	"finuel.backend/pkg/jwt"
)

// AuthUsecase handles registration, login and the OTP verification lifecycle
type AuthUsecase struct {
	userRepo   repositories.UserRepository
	otpRepo    repositories.OTPRepository
	jwtService *jwt.JWTService
	mailer     Mailer
	cooldown   Cooldown
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.OTPRepository,
	jwtService *jwt.JWTService,
	mailer Mailer,
	cooldown Cooldown,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:   userRepo,
		otpRepo:    otpRepo,
		jwtService: jwtService,
		mailer:     mailer,
		cooldown:   cooldown,
	}
}

// Register creates a user and signs an initial session token. The plaintext
// password is hashed immediately and never stored or logged.
func (u *AuthUsecase) Register(ctx context.Context, input *entities.RegisterInput) (*entities.AuthResponse, error) {
	passwordHash, err := crypto.HashSecret(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: passwordHash,
	}
	if input.Username != "" {
		user.Username = null.StringFrom(input.Username)
	}
	if input.Phone != "" {
		user.Phone = null.StringFrom(input.Phone)
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	session, err := u.jwtService.SignSession(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken: session.AccessToken,
		ExpiresIn:   session.ExpiresIn,
		User:        user.Sanitized(),
	}, nil
}

// Login authenticates by email or username. The same ErrInvalidCredentials is
// returned for an unknown identifier and a wrong password.
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	identifier := strings.TrimSpace(input.Identifier)

	var user *entities.User
	var err error
	if strings.Contains(identifier, "@") {
		user, err = u.userRepo.GetByEmail(ctx, strings.ToLower(identifier))
	} else {
		user, err = u.userRepo.GetByUsername(ctx, identifier)
	}
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckSecret(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	session, err := u.jwtService.SignSession(user.ID, user.Email, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		AccessToken: session.AccessToken,
		ExpiresIn:   session.ExpiresIn,
		User:        user.Sanitized(),
	}, nil
}

// issueOTP generates a 6-digit code, stores its hash with a 1-hour expiry and
// returns the plaintext code for out-of-band delivery. The upsert replaces any
// prior active code for the user.
func (u *AuthUsecase) issueOTP(ctx context.Context, userID uuid.UUID, otpType entities.OTPType) (string, error) {
	allowed, err := u.cooldown.Acquire(ctx, string(otpType)+":"+userID.String())
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", domainerrors.ErrTooManyRequests
	}

	code, err := crypto.GenerateOTP()
	if err != nil {
		return "", err
	}

	codeHash, err := crypto.HashSecret(code)
	if err != nil {
		return "", err
	}

	now := time.Now()
	otp := &entities.OTP{
		UserID:    userID,
		Type:      otpType,
		CodeHash:  codeHash,
		ExpiresAt: now.Add(entities.OTPValidity),
		CreatedAt: now,
	}
	if err := u.otpRepo.Upsert(ctx, otp); err != nil {
		return "", err
	}

	return code, nil
}

// checkOTP verifies a submitted code against the user's active one and
// consumes it on success.
func (u *AuthUsecase) checkOTP(ctx context.Context, userID uuid.UUID, otpType entities.OTPType, code string) error {
	otp, err := u.otpRepo.GetActive(ctx, userID, otpType)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidOrExpiredOTP
		}
		return err
	}

	if otp.Expired(time.Now()) || !crypto.CheckSecret(code, otp.CodeHash) {
		return domainerrors.ErrInvalidOrExpiredOTP
	}

	return u.otpRepo.Delete(ctx, userID, otpType)
}

// SendEmailVerification issues an email OTP and delivers it. Mail failures
// are surfaced to the caller.
func (u *AuthUsecase) SendEmailVerification(ctx context.Context, userID uuid.UUID) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	code, err := u.issueOTP(ctx, user.ID, entities.OTPTypeEmail)
	if err != nil {
		return err
	}

	if err := u.mailer.Send(ctx, user.Email, user.FullName(), "Verify your email", code); err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrMailDelivery, err)
	}
	return nil
}

// VerifyEmail consumes a submitted code and marks the user's email verified.
func (u *AuthUsecase) VerifyEmail(ctx context.Context, userID uuid.UUID, code string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := u.checkOTP(ctx, user.ID, entities.OTPTypeEmail, code); err != nil {
		return err
	}

	user.EmailVerified = true
	return u.userRepo.Update(ctx, user)
}

// ForgotPassword issues a password-reset OTP to a registered email address.
func (u *AuthUsecase) ForgotPassword(ctx context.Context, email string) error {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		return err
	}

	code, err := u.issueOTP(ctx, user.ID, entities.OTPTypeEmail)
	if err != nil {
		return err
	}

	if err := u.mailer.Send(ctx, user.Email, user.FullName(), "Password reset", code); err != nil {
		return fmt.Errorf("%w: %v", domainerrors.ErrMailDelivery, err)
	}
	return nil
}

// ResetPassword consumes a reset code and stores the new password hash.
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	user, err := u.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(input.Email)))
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		return err
	}

	if err := u.checkOTP(ctx, user.ID, entities.OTPTypeEmail, input.OTP); err != nil {
		return err
	}

	passwordHash, err := crypto.HashSecret(input.Password)
	if err != nil {
		return err
	}

	user.PasswordHash = passwordHash
	return u.userRepo.Update(ctx, user)
}

// ChangePassword verifies the current password before storing a new hash.
func (u *AuthUsecase) ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !crypto.CheckSecret(input.CurrentPassword, user.PasswordHash) {
		return domainerrors.ErrInvalidCredentials
	}

	passwordHash, err := crypto.HashSecret(input.NewPassword)
	if err != nil {
		return err
	}

	user.PasswordHash = passwordHash
	return u.userRepo.Update(ctx, user)
}
