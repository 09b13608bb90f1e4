package entities

import (
	"time"

	"github.com/google/uuid"
)

// Settings is the per-user preference and security-flag record, one-to-one
// with User and created lazily on first write.
type Settings struct {
	UserID               uuid.UUID `json:"userId"`
	HasPaymentPin        bool      `json:"hasPaymentPin"`
	HasAuthenticationPin bool      `json:"hasAuthenticationPin"`
	EnabledBiometrics    bool      `json:"enabledBiometrics"`
	EnabledNotifications bool      `json:"enabledNotifications"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// UpdateSettingsInput is a partial settings update; nil fields are left untouched.
type UpdateSettingsInput struct {
	HasPaymentPin        *bool `json:"hasPaymentPin"`
	HasAuthenticationPin *bool `json:"hasAuthenticationPin"`
	EnabledBiometrics    *bool `json:"enabledBiometrics"`
	EnabledNotifications *bool `json:"enabledNotifications"`
}
