package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// Occupation categories with distinct completeness rules
const (
	OccupationEmployed     = "employed"
	OccupationSelfEmployed = "self-employed"
	OccupationStudent      = "student"
	OccupationUnemployed   = "unemployed"
)

// EmploymentInformation is a per-user employment record, one-to-one with User.
type EmploymentInformation struct {
	UserID        uuid.UUID   `json:"userId"`
	Occupation    string      `json:"occupation"`
	Sector        null.String `json:"sector,omitempty"`
	Name          string      `json:"name"`
	Role          string      `json:"role"`
	Address       string      `json:"address"`
	StartDate     null.String `json:"startDate,omitempty"`
	EndDate       null.String `json:"endDate,omitempty"`
	MonthlyIncome float64     `json:"monthlyIncome"`
	SalaryDate    null.String `json:"salaryDate,omitempty"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}

// EmploymentInput represents an employment-information submission.
type EmploymentInput struct {
	Occupation    string  `json:"occupation" binding:"required,oneof=employed self-employed student unemployed"`
	Sector        string  `json:"sector"`
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Address       string  `json:"address"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	SalaryDate    string  `json:"salaryDate"`
}
