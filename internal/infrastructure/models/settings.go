package models

import (
	"time"

	"github.com/google/uuid"
)

type Settings struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	HasPaymentPin        bool      `gorm:"not null;default:false"`
	HasAuthenticationPin bool      `gorm:"not null;default:false"`
	EnabledBiometrics    bool      `gorm:"not null;default:false"`
	EnabledNotifications bool      `gorm:"not null;default:false"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (Settings) TableName() string {
	return "settings"
}
