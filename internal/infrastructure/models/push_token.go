package models

import (
	"time"

	"github.com/google/uuid"
)

type PushToken struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_push_tokens_user_token"`
	Token     string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_push_tokens_user_token"`
	CreatedAt time.Time
}
