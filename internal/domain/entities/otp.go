package entities

import (
	"time"

	"github.com/google/uuid"
)

// OTPType tags what a verification code proves
type OTPType string

const (
	OTPTypeEmail OTPType = "email"
)

// OTPValidity is the window within which an issued code may be redeemed.
const OTPValidity = time.Hour

// OTP is a single-use verification code. The code itself is stored hashed;
// at most one active code exists per (user, type).
type OTP struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Type      OTPType   `json:"type"`
	CodeHash  string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

// Expired reports whether the code is outside its validity window.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}
