package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
)

type User struct {
	ID                              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Email                           string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	Username                        null.String `gorm:"type:varchar(100);uniqueIndex"`
	Phone                           null.String `gorm:"type:varchar(32);uniqueIndex"`
	FirstName                       string      `gorm:"type:varchar(100);not null"`
	LastName                        string      `gorm:"type:varchar(100);not null"`
	Gender                          null.String `gorm:"type:varchar(16)"`
	DOB                             null.String `gorm:"type:varchar(32)"`
	Address                         null.String `gorm:"type:varchar(255)"`
	City                            null.String `gorm:"type:varchar(100)"`
	State                           null.String `gorm:"type:varchar(100)"`
	Country                         null.String `gorm:"type:varchar(100)"`
	LGA                             null.String `gorm:"type:varchar(100);column:lga"`
	MaritalStatus                   null.String `gorm:"type:varchar(16)"`
	Avatar                          null.String `gorm:"type:varchar(512)"`
	PasswordHash                    string      `gorm:"type:varchar(255);not null"`
	PaymentPinHash                  null.String `gorm:"type:varchar(255)"`
	AuthenticationPinHash           null.String `gorm:"type:varchar(255)"`
	IsAdmin                         bool        `gorm:"not null;default:false"`
	EmailVerified                   bool        `gorm:"not null;default:false"`
	IsKYC                           bool        `gorm:"column:is_kyc;not null;default:false"`
	IsProfileComplete               bool        `gorm:"not null;default:false"`
	ProfileCompletePercentage       int         `gorm:"not null;default:0"`
	IsEmploymentInformationComplete bool        `gorm:"not null;default:false"`
	CreatedAt                       time.Time
	UpdatedAt                       time.Time
	DeletedAt                       gorm.DeletedAt `gorm:"index"`
}
