package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/volatiletech/null/v8"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/usecases"
	"finuel.backend/pkg/crypto"
)

type userUsecaseMocks struct {
	userRepo       *MockUserRepository
	settingsRepo   *MockSettingsRepository
	kycRepo        *MockKYCRepository
	employmentRepo *MockEmploymentRepository
	loanRepo       *MockLoanRepository
	pushTokenRepo  *MockPushTokenRepository
	notifier       *MockPushNotifier
}

func newUserUsecaseForTest() (*usecases.UserUsecase, *userUsecaseMocks) {
	m := &userUsecaseMocks{
		userRepo:       new(MockUserRepository),
		settingsRepo:   new(MockSettingsRepository),
		kycRepo:        new(MockKYCRepository),
		employmentRepo: new(MockEmploymentRepository),
		loanRepo:       new(MockLoanRepository),
		pushTokenRepo:  new(MockPushTokenRepository),
		notifier:       new(MockPushNotifier),
	}
	uc := usecases.NewUserUsecase(m.userRepo, m.settingsRepo, m.kycRepo, m.employmentRepo, m.loanRepo, m.pushTokenRepo, m.notifier)
	return uc, m
}

func completeUser() *entities.User {
	return &entities.User{
		ID:        uuid.New(),
		Email:     "ada@mail.com",
		Username:  null.StringFrom("ada"),
		FirstName: "Ada",
		LastName:  "Obi",
		Phone:     null.StringFrom("08012345678"),
		Gender:    null.StringFrom(entities.GenderFemale),
		DOB:       null.StringFrom("1990-01-01"),
		State:     null.StringFrom("Lagos"),
		LGA:       null.StringFrom("Ikeja"),
	}
}

func TestUserUsecase_EditUser_FullyCompleteProfile(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := completeUser()
	user.Gender = null.String{}
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()

	gender := entities.GenderFemale
	updated, err := uc.EditUser(context.Background(), user.ID, &entities.EditUserInput{Gender: &gender})
	assert.NoError(t, err)
	assert.True(t, updated.IsProfileComplete)
	assert.Equal(t, 100, updated.ProfileCompletePercentage)
}

func TestUserUsecase_EditUser_PartialProfilePercentage(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	// Email, first name and last name set; six of the nine tracked fields missing.
	user := &entities.User{
		ID:        uuid.New(),
		Email:     "ada@mail.com",
		FirstName: "Ada",
		LastName:  "Obi",
	}
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()

	city := "Lagos"
	updated, err := uc.EditUser(context.Background(), user.ID, &entities.EditUserInput{City: &city})
	assert.NoError(t, err)
	assert.False(t, updated.IsProfileComplete)
	assert.Equal(t, 33, updated.ProfileCompletePercentage)
}

func TestUserUsecase_EditUser_RoundsPercentageUp(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	// Six of the nine tracked fields set; 100*6/9 rounds up to 67, not 66.
	user := completeUser()
	user.Gender = null.String{}
	user.State = null.String{}
	user.LGA = null.String{}
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()

	updated, err := uc.EditUser(context.Background(), user.ID, &entities.EditUserInput{})
	assert.NoError(t, err)
	assert.False(t, updated.IsProfileComplete)
	assert.Equal(t, 67, updated.ProfileCompletePercentage)
}

func TestUserUsecase_EditUser_ClearsFieldWithEmptyString(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := completeUser()
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()

	empty := ""
	updated, err := uc.EditUser(context.Background(), user.ID, &entities.EditUserInput{Phone: &empty})
	assert.NoError(t, err)
	assert.False(t, updated.Phone.Valid)
	assert.False(t, updated.IsProfileComplete)
	assert.Equal(t, 89, updated.ProfileCompletePercentage)
}

func TestUserUsecase_SetPaymentPin_RejectsBeforeHashing(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	for _, pin := range []string{"123", "12345", "abcd", "12a4", ""} {
		_, err := uc.SetPaymentPin(context.Background(), uuid.New(), pin)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	}
	m.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	m.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUserUsecase_SetPaymentPin_Success(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := &entities.User{ID: uuid.New(), Email: "ada@mail.com"}
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Run(func(args mock.Arguments) {
		u := args.Get(1).(*entities.User)
		assert.NotEqual(t, "1234", u.PaymentPinHash)
		assert.True(t, crypto.CheckSecret("1234", u.PaymentPinHash))
	}).Once()
	m.settingsRepo.On("Upsert", context.Background(), user.ID, mock.AnythingOfType("*entities.UpdateSettingsInput")).Return(&entities.Settings{
		UserID:        user.ID,
		HasPaymentPin: true,
	}, nil).Run(func(args mock.Arguments) {
		input := args.Get(2).(*entities.UpdateSettingsInput)
		assert.NotNil(t, input.HasPaymentPin)
		assert.True(t, *input.HasPaymentPin)
	}).Once()

	sanitized, err := uc.SetPaymentPin(context.Background(), user.ID, "1234")
	assert.NoError(t, err)
	assert.Empty(t, sanitized.PaymentPinHash)
}

func TestUserUsecase_VerifyAuthenticationPin(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	pinHash, _ := crypto.HashSecret("135790")
	user := &entities.User{ID: uuid.New(), AuthenticationPinHash: pinHash}
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil)

	assert.NoError(t, uc.VerifyAuthenticationPin(context.Background(), user.ID, "135790"))
	assert.ErrorIs(t, uc.VerifyAuthenticationPin(context.Background(), user.ID, "000000"), domainerrors.ErrInvalidPin)

	unset := &entities.User{ID: uuid.New()}
	m.userRepo.On("GetByID", context.Background(), unset.ID).Return(unset, nil).Once()
	assert.ErrorIs(t, uc.VerifyAuthenticationPin(context.Background(), unset.ID, "135790"), domainerrors.ErrInvalidPin)
}

func TestUserUsecase_SubmitKYC_NameMismatch(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := &entities.User{ID: uuid.New(), FirstName: "Ada", LastName: "Obi"}
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil)

	_, err := uc.SubmitKYC(context.Background(), user.ID, &entities.KYCInput{
		BVN:       "12345678901",
		FirstName: "Ada",
		LastName:  "Nwosu",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNameMismatch)

	_, err = uc.SubmitKYC(context.Background(), user.ID, &entities.KYCInput{
		BVN:       "12345678901",
		FirstName: "Chioma",
		LastName:  "Obi",
	})
	assert.ErrorIs(t, err, domainerrors.ErrNameMismatch)
	m.kycRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestUserUsecase_SubmitKYC_Success(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := &entities.User{ID: uuid.New(), FirstName: "Ada", LastName: "Obi"}
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.kycRepo.On("Upsert", context.Background(), mock.AnythingOfType("*entities.KYC")).Return(nil).Once()
	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Once()

	// Name comparison is case-insensitive.
	sanitized, err := uc.SubmitKYC(context.Background(), user.ID, &entities.KYCInput{
		BVN:       "12345678901",
		FirstName: "ADA",
		LastName:  "obi",
	})
	assert.NoError(t, err)
	assert.True(t, sanitized.IsKYC)
}

func TestUserUsecase_SubmitEmploymentInformation_Student(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := completeUser()
	m.employmentRepo.On("Upsert", context.Background(), mock.AnythingOfType("*entities.EmploymentInformation")).Return(nil)
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil)

	// A student with name, address, start date and role is complete without
	// income or sector.
	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Run(func(args mock.Arguments) {
		assert.True(t, args.Get(1).(*entities.User).IsEmploymentInformationComplete)
	}).Once()
	_, err := uc.SubmitEmploymentInformation(context.Background(), user.ID, &entities.EmploymentInput{
		Occupation: entities.OccupationStudent,
		Name:       "Unilag",
		Address:    "Akoka, Lagos",
		StartDate:  "2019-09-01",
		Role:       "Undergraduate",
	})
	assert.NoError(t, err)

	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Run(func(args mock.Arguments) {
		assert.False(t, args.Get(1).(*entities.User).IsEmploymentInformationComplete)
	}).Once()
	_, err = uc.SubmitEmploymentInformation(context.Background(), user.ID, &entities.EmploymentInput{
		Occupation: entities.OccupationStudent,
		Name:       "Unilag",
		Address:    "Akoka, Lagos",
	})
	assert.NoError(t, err)
}

func TestUserUsecase_SubmitEmploymentInformation_EmployedRequiresIncome(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := completeUser()
	m.employmentRepo.On("Upsert", context.Background(), mock.AnythingOfType("*entities.EmploymentInformation")).Return(nil).Once()
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.userRepo.On("Update", context.Background(), mock.AnythingOfType("*entities.User")).Return(nil).Run(func(args mock.Arguments) {
		assert.False(t, args.Get(1).(*entities.User).IsEmploymentInformationComplete)
	}).Once()

	_, err := uc.SubmitEmploymentInformation(context.Background(), user.ID, &entities.EmploymentInput{
		Occupation: entities.OccupationEmployed,
		Name:       "Acme Ltd",
		Address:    "Victoria Island",
		StartDate:  "2020-01-01",
		Sector:     "fintech",
		Role:       "Engineer",
	})
	assert.NoError(t, err)
}

func TestUserUsecase_GetLoanEligibility_ActiveLoanBlocks(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	// Fully qualified user, yet an active loan still blocks.
	user := completeUser()
	user.IsProfileComplete = true
	user.IsEmploymentInformationComplete = true
	user.IsKYC = true

	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.loanRepo.On("HasActiveLoan", context.Background(), user.ID).Return(true, nil).Once()
	m.pushTokenRepo.On("List", context.Background(), user.ID).Return([]string{"ExponentPushToken[x]"}, nil).Once()
	m.notifier.On("Send", context.Background(), []string{"ExponentPushToken[x]"}, "Loan Application", mock.AnythingOfType("string"), mock.Anything).Return(nil).Once()

	eligibility, err := uc.GetLoanEligibility(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.False(t, eligibility.IsEligible)
	assert.Contains(t, eligibility.Message, "active loan")
}

func TestUserUsecase_GetLoanEligibility_RequiresAllThreeFlags(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := completeUser()
	user.IsProfileComplete = true
	user.IsEmploymentInformationComplete = true
	user.IsKYC = false

	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil)
	m.loanRepo.On("HasActiveLoan", context.Background(), user.ID).Return(false, nil)
	m.pushTokenRepo.On("List", context.Background(), user.ID).Return([]string{}, nil)
	m.notifier.On("Send", context.Background(), []string{}, "Loan Application", mock.AnythingOfType("string"), mock.Anything).Return(nil)

	eligibility, err := uc.GetLoanEligibility(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.False(t, eligibility.IsEligible)

	user.IsKYC = true
	eligibility, err = uc.GetLoanEligibility(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.True(t, eligibility.IsEligible)
	assert.Equal(t, "You are eligible for a loan", eligibility.Message)
}

func TestUserUsecase_GetLoanEligibility_PushFailureSwallowed(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := completeUser()
	user.IsProfileComplete = true
	user.IsEmploymentInformationComplete = true
	user.IsKYC = true

	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.loanRepo.On("HasActiveLoan", context.Background(), user.ID).Return(false, nil).Once()
	m.pushTokenRepo.On("List", context.Background(), user.ID).Return([]string{"ExponentPushToken[x]"}, nil).Once()
	m.notifier.On("Send", context.Background(), mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError).Once()

	eligibility, err := uc.GetLoanEligibility(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.True(t, eligibility.IsEligible)
}

func TestUserUsecase_RemovePushToken_EmptyClearsAll(t *testing.T) {
	uc, m := newUserUsecaseForTest()
	userID := uuid.New()

	m.pushTokenRepo.On("Clear", context.Background(), userID).Return(nil).Once()
	assert.NoError(t, uc.RemovePushToken(context.Background(), userID, ""))

	m.pushTokenRepo.On("Remove", context.Background(), userID, "ExponentPushToken[x]").Return(nil).Once()
	assert.NoError(t, uc.RemovePushToken(context.Background(), userID, "ExponentPushToken[x]"))
	m.pushTokenRepo.AssertExpectations(t)
}

func TestUserUsecase_GetProfile_ComposesRecords(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := completeUser()
	user.PasswordHash = "secret-hash"
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.pushTokenRepo.On("List", context.Background(), user.ID).Return([]string{"ExponentPushToken[x]"}, nil).Once()
	m.settingsRepo.On("Get", context.Background(), user.ID).Return(&entities.Settings{UserID: user.ID, HasPaymentPin: true}, nil).Once()
	m.kycRepo.On("GetByUserID", context.Background(), user.ID).Return(nil, domainerrors.ErrNotFound).Once()
	m.employmentRepo.On("GetByUserID", context.Background(), user.ID).Return(nil, domainerrors.ErrNotFound).Once()

	profile, err := uc.GetProfile(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Empty(t, profile.User.PasswordHash)
	assert.Equal(t, []string{"ExponentPushToken[x]"}, profile.User.PushTokens)
	assert.True(t, profile.Settings.HasPaymentPin)
	assert.Nil(t, profile.KYC)
	assert.Nil(t, profile.Employment)
}

func TestUserUsecase_GetProfile_PushTokenListFailureTolerated(t *testing.T) {
	uc, m := newUserUsecaseForTest()

	user := completeUser()
	m.userRepo.On("GetByID", context.Background(), user.ID).Return(user, nil).Once()
	m.pushTokenRepo.On("List", context.Background(), user.ID).Return(nil, errors.New("connection reset")).Once()
	m.settingsRepo.On("Get", context.Background(), user.ID).Return(nil, domainerrors.ErrNotFound).Once()
	m.kycRepo.On("GetByUserID", context.Background(), user.ID).Return(nil, domainerrors.ErrNotFound).Once()
	m.employmentRepo.On("GetByUserID", context.Background(), user.ID).Return(nil, domainerrors.ErrNotFound).Once()

	profile, err := uc.GetProfile(context.Background(), user.ID)
	assert.NoError(t, err)
	assert.Empty(t, profile.User.PushTokens)
}
