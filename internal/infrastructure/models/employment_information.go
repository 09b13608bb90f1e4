package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type EmploymentInformation struct {
	UserID        uuid.UUID   `gorm:"type:uuid;primaryKey"`
	Occupation    string      `gorm:"type:varchar(32);not null"`
	Sector        null.String `gorm:"type:varchar(64)"`
	Name          string      `gorm:"type:varchar(255);not null"`
	Role          string      `gorm:"type:varchar(100);not null"`
	Address       string      `gorm:"type:varchar(255);not null"`
	StartDate     null.String `gorm:"type:varchar(32)"`
	EndDate       null.String `gorm:"type:varchar(32)"`
	MonthlyIncome float64     `gorm:"not null;default:0"`
	SalaryDate    null.String `gorm:"type:varchar(32)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (EmploymentInformation) TableName() string {
	return "employment_information"
}
