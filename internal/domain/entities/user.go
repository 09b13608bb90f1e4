package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Gender values accepted on profile edits
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// User represents a registered account with its profile and derived flags.
// Secret hashes are never serialized.
type User struct {
	ID                              uuid.UUID   `json:"id"`
	Email                           string      `json:"email"`
	Username                        null.String `json:"username,omitempty"`
	Phone                           null.String `json:"phone,omitempty"`
	FirstName                       string      `json:"firstName"`
	LastName                        string      `json:"lastName"`
	Gender                          null.String `json:"gender,omitempty"`
	DOB                             null.String `json:"dob,omitempty"`
	Address                         null.String `json:"address,omitempty"`
	City                            null.String `json:"city,omitempty"`
	State                           null.String `json:"state,omitempty"`
	Country                         null.String `json:"country,omitempty"`
	LGA                             null.String `json:"lga,omitempty"`
	MaritalStatus                   null.String `json:"maritalStatus,omitempty"`
	Avatar                          null.String `json:"avatar,omitempty"`
	PasswordHash                    string      `json:"-"`
	PaymentPinHash                  string      `json:"-"`
	AuthenticationPinHash           string      `json:"-"`
	IsAdmin                         bool        `json:"isAdmin"`
	EmailVerified                   bool        `json:"emailVerified"`
	IsKYC                           bool        `json:"isKYC"`
	IsProfileComplete               bool        `json:"isProfileComplete"`
	ProfileCompletePercentage       int         `json:"profileCompletePercentage"`
	IsEmploymentInformationComplete bool        `json:"isEmploymentInformationComplete"`
	PushTokens                      []string    `json:"pushTokens,omitempty"`
	CreatedAt                       time.Time   `json:"createdAt"`
	UpdatedAt                       time.Time   `json:"updatedAt"`
}

// Sanitized returns a copy of the user with every secret hash stripped.
// Handlers must only ever serialize sanitized users.
func (u *User) Sanitized() *User {
	c := *u
	c.PasswordHash = ""
	c.PaymentPinHash = ""
	c.AuthenticationPinHash = ""
	return &c
}

// FullName returns the display name used in outbound email.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// RegisterInput represents input for user registration
type RegisterInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username"`
	Phone     string `json:"phone"`
}

// LoginInput represents input for login. The identifier is an email when it
// contains '@', otherwise a username.
type LoginInput struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// AuthResponse represents a successful registration or login
type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   string `json:"expiresIn"`
	User        *User  `json:"user"`
}

// EditUserInput represents a partial profile update. Only non-nil fields are applied.
type EditUserInput struct {
	Username      *string `json:"username"`
	FirstName     *string `json:"firstName"`
	LastName      *string `json:"lastName"`
	Phone         *string `json:"phone"`
	Gender        *string `json:"gender" binding:"omitempty,oneof=male female"`
	DOB           *string `json:"dob"`
	Address       *string `json:"address"`
	City          *string `json:"city"`
	State         *string `json:"state"`
	Country       *string `json:"country"`
	LGA           *string `json:"lga"`
	MaritalStatus *string `json:"maritalStatus" binding:"omitempty,oneof=single married divorced widowed"`
	Avatar        *string `json:"avatar"`
}

// ChangePasswordInput represents input for changing the password of an
// authenticated user.
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// ForgotPasswordInput requests a password-reset code.
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput consumes a password-reset code.
type ResetPasswordInput struct {
	Email    string `json:"email" binding:"required,email"`
	OTP      string `json:"otp" binding:"required,len=6"`
	Password string `json:"password" binding:"required,min=8"`
}
