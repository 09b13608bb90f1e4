package usecases

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/domain/repositories"
	"finuel.backend/pkg/crypto"
	"finuel.backend/pkg/logger"
)

var (
	paymentPinPattern = regexp.MustCompile(`^\d{4}$`)
	authPinPattern    = regexp.MustCompile(`^\d{6}$`)
)

// Profile is the sanitized composite returned on profile reads.
type Profile struct {
	User       *entities.User                  `json:"user"`
	Settings   *entities.Settings              `json:"settings,omitempty"`
	KYC        *entities.KYC                   `json:"kyc,omitempty"`
	Employment *entities.EmploymentInformation `json:"employmentInformation,omitempty"`
}

// UserUsecase handles profile, PIN, settings, KYC, employment and loan
// eligibility flows.
type UserUsecase struct {
	userRepo       repositories.UserRepository
	settingsRepo   repositories.SettingsRepository
	kycRepo        repositories.KYCRepository
	employmentRepo repositories.EmploymentRepository
	loanRepo       repositories.LoanRepository
	pushTokenRepo  repositories.PushTokenRepository
	notifier       PushNotifier
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	settingsRepo repositories.SettingsRepository,
	kycRepo repositories.KYCRepository,
	employmentRepo repositories.EmploymentRepository,
	loanRepo repositories.LoanRepository,
	pushTokenRepo repositories.PushTokenRepository,
	notifier PushNotifier,
) *UserUsecase {
	return &UserUsecase{
		userRepo:       userRepo,
		settingsRepo:   settingsRepo,
		kycRepo:        kycRepo,
		employmentRepo: employmentRepo,
		loanRepo:       loanRepo,
		pushTokenRepo:  pushTokenRepo,
		notifier:       notifier,
	}
}

// GetProfile returns the sanitized user with its one-to-one records.
func (u *UserUsecase) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{User: user.Sanitized()}

	if tokens, err := u.pushTokenRepo.List(ctx, userID); err == nil {
		profile.User.PushTokens = tokens
	} else {
		logger.Warn(ctx, "failed to load push tokens", zap.Error(err))
	}
	if settings, err := u.settingsRepo.Get(ctx, userID); err == nil {
		profile.Settings = settings
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if kyc, err := u.kycRepo.GetByUserID(ctx, userID); err == nil {
		profile.KYC = kyc
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}
	if employment, err := u.employmentRepo.GetByUserID(ctx, userID); err == nil {
		profile.Employment = employment
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, err
	}

	return profile, nil
}

// EditUser applies the provided fields and re-derives profile completeness
// from the post-update record.
func (u *UserUsecase) EditUser(ctx context.Context, userID uuid.UUID, input *entities.EditUserInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	applyString := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	applyNull := func(dst *null.String, src *string) {
		if src == nil {
			return
		}
		if *src == "" {
			*dst = null.String{}
			return
		}
		*dst = null.StringFrom(*src)
	}

	applyNull(&user.Username, input.Username)
	applyString(&user.FirstName, input.FirstName)
	applyString(&user.LastName, input.LastName)
	applyNull(&user.Phone, input.Phone)
	applyNull(&user.Gender, input.Gender)
	applyNull(&user.DOB, input.DOB)
	applyNull(&user.Address, input.Address)
	applyNull(&user.City, input.City)
	applyNull(&user.State, input.State)
	applyNull(&user.Country, input.Country)
	applyNull(&user.LGA, input.LGA)
	applyNull(&user.MaritalStatus, input.MaritalStatus)
	applyNull(&user.Avatar, input.Avatar)

	user.ProfileCompletePercentage, user.IsProfileComplete = profileCompleteness(user)

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// SetPaymentPin hashes and stores a 4-digit payment PIN.
func (u *UserUsecase) SetPaymentPin(ctx context.Context, userID uuid.UUID, pin string) (*entities.User, error) {
	if !paymentPinPattern.MatchString(pin) {
		return nil, domainerrors.BadRequest("Pin must be 4 digits")
	}
	return u.setPin(ctx, userID, pin, true)
}

// SetAuthenticationPin hashes and stores a 6-digit authentication PIN.
func (u *UserUsecase) SetAuthenticationPin(ctx context.Context, userID uuid.UUID, pin string) (*entities.User, error) {
	if !authPinPattern.MatchString(pin) {
		return nil, domainerrors.BadRequest("Pin must be 6 digits")
	}
	return u.setPin(ctx, userID, pin, false)
}

func (u *UserUsecase) setPin(ctx context.Context, userID uuid.UUID, pin string, payment bool) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	pinHash, err := crypto.HashSecret(pin)
	if err != nil {
		return nil, err
	}

	settings := &entities.UpdateSettingsInput{}
	enabled := true
	if payment {
		user.PaymentPinHash = pinHash
		settings.HasPaymentPin = &enabled
	} else {
		user.AuthenticationPinHash = pinHash
		settings.HasAuthenticationPin = &enabled
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	if _, err := u.settingsRepo.Upsert(ctx, userID, settings); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// VerifyAuthenticationPin compares a submitted PIN with the stored hash.
func (u *UserUsecase) VerifyAuthenticationPin(ctx context.Context, userID uuid.UUID, pin string) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user.AuthenticationPinHash == "" || !crypto.CheckSecret(pin, user.AuthenticationPinHash) {
		return domainerrors.ErrInvalidPin
	}
	return nil
}

// AddPushToken registers a device token for the user.
func (u *UserUsecase) AddPushToken(ctx context.Context, userID uuid.UUID, token string) error {
	return u.pushTokenRepo.Add(ctx, userID, token)
}

// RemovePushToken unregisters one device token, or all of them when token is empty.
func (u *UserUsecase) RemovePushToken(ctx context.Context, userID uuid.UUID, token string) error {
	if token == "" {
		return u.pushTokenRepo.Clear(ctx, userID)
	}
	return u.pushTokenRepo.Remove(ctx, userID, token)
}

// UpdateSettings upserts the user's settings record.
func (u *UserUsecase) UpdateSettings(ctx context.Context, userID uuid.UUID, input *entities.UpdateSettingsInput) (*entities.Settings, error) {
	return u.settingsRepo.Upsert(ctx, userID, input)
}

// SubmitEmploymentInformation upserts the employment record and re-derives
// the employment-completeness flag from the submission.
func (u *UserUsecase) SubmitEmploymentInformation(ctx context.Context, userID uuid.UUID, input *entities.EmploymentInput) (*entities.EmploymentInformation, error) {
	info := &entities.EmploymentInformation{
		UserID:        userID,
		Occupation:    input.Occupation,
		Sector:        nullFrom(input.Sector),
		Name:          input.Name,
		Role:          input.Role,
		Address:       input.Address,
		StartDate:     nullFrom(input.StartDate),
		EndDate:       nullFrom(input.EndDate),
		MonthlyIncome: input.MonthlyIncome,
		SalaryDate:    nullFrom(input.SalaryDate),
	}
	if err := u.employmentRepo.Upsert(ctx, info); err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.IsEmploymentInformationComplete = employmentComplete(input)
	user.ProfileCompletePercentage, user.IsProfileComplete = profileCompleteness(user)
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return info, nil
}

// SubmitKYC verifies the submitted name against the stored one (either
// mismatching name rejects), upserts the KYC record and flips the flag.
func (u *UserUsecase) SubmitKYC(ctx context.Context, userID uuid.UUID, input *entities.KYCInput) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if !strings.EqualFold(user.FirstName, input.FirstName) || !strings.EqualFold(user.LastName, input.LastName) {
		return nil, domainerrors.ErrNameMismatch
	}

	kyc := &entities.KYC{
		UserID:    userID,
		BVN:       input.BVN,
		NINNumber: nullFrom(input.NINNumber),
		NINImage:  nullFrom(input.NINImage),
	}
	if err := u.kycRepo.Upsert(ctx, kyc); err != nil {
		return nil, err
	}

	user.IsKYC = true
	if err := u.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user.Sanitized(), nil
}

// GetLoanEligibility fails closed on any active loan, otherwise requires a
// complete profile, complete employment information and KYC. A push
// notification reports the result either way; notification failures never
// fail the read.
func (u *UserUsecase) GetLoanEligibility(ctx context.Context, userID uuid.UUID) (*entities.LoanEligibility, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	hasActiveLoan, err := u.loanRepo.HasActiveLoan(ctx, userID)
	if err != nil {
		return nil, err
	}

	if hasActiveLoan {
		msg := "You have an active loan. Please pay up before applying for another loan"
		u.notify(ctx, userID, "Loan Application", msg, map[string]string{"type": "loan"})
		return &entities.LoanEligibility{IsEligible: false, Message: msg}, nil
	}

	eligible := user.IsProfileComplete && user.IsEmploymentInformationComplete && user.IsKYC
	msg := "You are not eligible for a loan"
	if eligible {
		msg = "You are eligible for a loan"
	}
	u.notify(ctx, userID, "Loan Application", msg, nil)

	return &entities.LoanEligibility{IsEligible: eligible, Message: msg}, nil
}

func (u *UserUsecase) notify(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) {
	tokens, err := u.pushTokenRepo.List(ctx, userID)
	if err != nil {
		logger.Warn(ctx, "failed to load push tokens", zap.Error(err))
		return
	}
	if err := u.notifier.Send(ctx, tokens, title, body, data); err != nil {
		logger.Warn(ctx, "push notification failed", zap.Error(err))
	}
}

func nullFrom(s string) null.String {
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}
