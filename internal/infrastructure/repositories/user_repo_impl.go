package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/infrastructure/models"
)

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// translateUniqueViolation maps a storage uniqueness conflict onto the field
// that collided. Order matters: email first, then phone, then username.
func translateUniqueViolation(err error) error {
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "unique") && !strings.Contains(msg, "duplicate key") {
		return err
	}
	switch {
	case strings.Contains(msg, "email"):
		return domainerrors.ErrEmailInUse
	case strings.Contains(msg, "phone"):
		return domainerrors.ErrPhoneInUse
	case strings.Contains(msg, "username"):
		return domainerrors.ErrUsernameInUse
	}
	return domainerrors.ErrAlreadyExists
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	m := r.toModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateUniqueViolation(err)
	}

	user.CreatedAt = m.CreatedAt
	user.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByEmail gets a user by email. Lookups are case-insensitive because
// emails are stored lowercased.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", strings.ToLower(email)).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// GetByUsername gets a user by username
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.toEntity(&m), nil
}

// Update persists the user's mutable columns
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"username":                           user.Username,
		"phone":                              user.Phone,
		"first_name":                         user.FirstName,
		"last_name":                          user.LastName,
		"gender":                             user.Gender,
		"dob":                                user.DOB,
		"address":                            user.Address,
		"city":                               user.City,
		"state":                              user.State,
		"country":                            user.Country,
		"lga":                                user.LGA,
		"marital_status":                     user.MaritalStatus,
		"avatar":                             user.Avatar,
		"password_hash":                      user.PasswordHash,
		"payment_pin_hash":                   nullStringFrom(user.PaymentPinHash),
		"authentication_pin_hash":            nullStringFrom(user.AuthenticationPinHash),
		"email_verified":                     user.EmailVerified,
		"is_kyc":                             user.IsKYC,
		"is_profile_complete":                user.IsProfileComplete,
		"profile_complete_percentage":        user.ProfileCompletePercentage,
		"is_employment_information_complete": user.IsEmploymentInformationComplete,
		"updated_at":                         time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return translateUniqueViolation(result.Error)
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func (r *UserRepository) toModel(user *entities.User) *models.User {
	return &models.User{
		ID:                              user.ID,
		Email:                           strings.ToLower(user.Email),
		Username:                        user.Username,
		Phone:                           user.Phone,
		FirstName:                       user.FirstName,
		LastName:                        user.LastName,
		Gender:                          user.Gender,
		DOB:                             user.DOB,
		Address:                         user.Address,
		City:                            user.City,
		State:                           user.State,
		Country:                         user.Country,
		LGA:                             user.LGA,
		MaritalStatus:                   user.MaritalStatus,
		Avatar:                          user.Avatar,
		PasswordHash:                    user.PasswordHash,
		PaymentPinHash:                  nullStringFrom(user.PaymentPinHash),
		AuthenticationPinHash:           nullStringFrom(user.AuthenticationPinHash),
		IsAdmin:                         user.IsAdmin,
		EmailVerified:                   user.EmailVerified,
		IsKYC:                           user.IsKYC,
		IsProfileComplete:               user.IsProfileComplete,
		ProfileCompletePercentage:       user.ProfileCompletePercentage,
		IsEmploymentInformationComplete: user.IsEmploymentInformationComplete,
	}
}

func (r *UserRepository) toEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                              m.ID,
		Email:                           m.Email,
		Username:                        m.Username,
		Phone:                           m.Phone,
		FirstName:                       m.FirstName,
		LastName:                        m.LastName,
		Gender:                          m.Gender,
		DOB:                             m.DOB,
		Address:                         m.Address,
		City:                            m.City,
		State:                           m.State,
		Country:                         m.Country,
		LGA:                             m.LGA,
		MaritalStatus:                   m.MaritalStatus,
		Avatar:                          m.Avatar,
		PasswordHash:                    m.PasswordHash,
		PaymentPinHash:                  m.PaymentPinHash.String,
		AuthenticationPinHash:           m.AuthenticationPinHash.String,
		IsAdmin:                         m.IsAdmin,
		EmailVerified:                   m.EmailVerified,
		IsKYC:                           m.IsKYC,
		IsProfileComplete:               m.IsProfileComplete,
		ProfileCompletePercentage:       m.ProfileCompletePercentage,
		IsEmploymentInformationComplete: m.IsEmploymentInformationComplete,
		CreatedAt:                       m.CreatedAt,
		UpdatedAt:                       m.UpdatedAt,
	}
}
