package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type KYC struct {
	UserID    uuid.UUID   `gorm:"type:uuid;primaryKey"`
	BVN       string      `gorm:"type:varchar(32);not null;column:bvn"`
	NINNumber null.String `gorm:"type:varchar(32);column:nin_number"`
	NINImage  null.String `gorm:"type:varchar(512);column:nin_image"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (KYC) TableName() string {
	return "kyc_records"
}
