package models

import (
	"time"

	"github.com/google/uuid"
)

// OTP rows carry a unique (user_id, type) pair so issuing a new code replaces
// the prior one in a single conditional upsert.
type OTP struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_otps_user_type"`
	Type      string    `gorm:"type:varchar(32);not null;uniqueIndex:idx_otps_user_type"`
	CodeHash  string    `gorm:"type:varchar(255);not null"`
	ExpiresAt time.Time `gorm:"not null"`
	CreatedAt time.Time
}

func (OTP) TableName() string {
	return "otps"
}
