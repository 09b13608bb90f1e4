package usecases_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"finuel.backend/internal/domain/entities"
)

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// Mock OTPRepository
type MockOTPRepository struct {
	mock.Mock
}

func (m *MockOTPRepository) Upsert(ctx context.Context, otp *entities.OTP) error {
	args := m.Called(ctx, otp)
	return args.Error(0)
}

func (m *MockOTPRepository) GetActive(ctx context.Context, userID uuid.UUID, otpType entities.OTPType) (*entities.OTP, error) {
	args := m.Called(ctx, userID, otpType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OTP), args.Error(1)
}

func (m *MockOTPRepository) Delete(ctx context.Context, userID uuid.UUID, otpType entities.OTPType) error {
	args := m.Called(ctx, userID, otpType)
	return args.Error(0)
}

// Mock SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) Get(ctx context.Context, userID uuid.UUID) (*entities.Settings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Settings), args.Error(1)
}

func (m *MockSettingsRepository) Upsert(ctx context.Context, userID uuid.UUID, input *entities.UpdateSettingsInput) (*entities.Settings, error) {
	args := m.Called(ctx, userID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Settings), args.Error(1)
}

// Mock KYCRepository
type MockKYCRepository struct {
	mock.Mock
}

func (m *MockKYCRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.KYC, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.KYC), args.Error(1)
}

func (m *MockKYCRepository) Upsert(ctx context.Context, kyc *entities.KYC) error {
	args := m.Called(ctx, kyc)
	return args.Error(0)
}

// Mock EmploymentRepository
type MockEmploymentRepository struct {
	mock.Mock
}

func (m *MockEmploymentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.EmploymentInformation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.EmploymentInformation), args.Error(1)
}

func (m *MockEmploymentRepository) Upsert(ctx context.Context, info *entities.EmploymentInformation) error {
	args := m.Called(ctx, info)
	return args.Error(0)
}

// Mock LoanRepository
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) HasActiveLoan(ctx context.Context, userID uuid.UUID) (bool, error) {
	args := m.Called(ctx, userID)
	return args.Bool(0), args.Error(1)
}

// Mock PushTokenRepository
type MockPushTokenRepository struct {
	mock.Mock
}

func (m *MockPushTokenRepository) Add(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockPushTokenRepository) Remove(ctx context.Context, userID uuid.UUID, token string) error {
	args := m.Called(ctx, userID, token)
	return args.Error(0)
}

func (m *MockPushTokenRepository) Clear(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockPushTokenRepository) List(ctx context.Context, userID uuid.UUID) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// Mock Mailer
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, toEmail, toName, subject, content string) error {
	args := m.Called(ctx, toEmail, toName, subject, content)
	return args.Error(0)
}

// Mock PushNotifier
type MockPushNotifier struct {
	mock.Mock
}

func (m *MockPushNotifier) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) error {
	args := m.Called(ctx, tokens, title, body, data)
	return args.Error(0)
}

// Mock Cooldown
type MockCooldown struct {
	mock.Mock
}

func (m *MockCooldown) Acquire(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}
