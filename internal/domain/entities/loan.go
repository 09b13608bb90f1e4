package entities

import (
	"time"

	"github.com/google/uuid"
)

// LoanStatus represents the lifecycle state of a loan
type LoanStatus string

const (
	LoanStatusPending   LoanStatus = "pending"
	LoanStatusApproved  LoanStatus = "approved"
	LoanStatusDisbursed LoanStatus = "disbursed"
	LoanStatusRepaid    LoanStatus = "repaid"
	LoanStatusRejected  LoanStatus = "rejected"
)

// ActiveLoanStatuses block further loan applications while any loan holds one of them.
var ActiveLoanStatuses = []LoanStatus{LoanStatusPending, LoanStatusApproved, LoanStatusDisbursed}

// Loan is referenced here only for the eligibility read.
type Loan struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"userId"`
	Amount    float64    `json:"amount"`
	Status    LoanStatus `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// LoanEligibility is the result of an eligibility check.
type LoanEligibility struct {
	IsEligible bool   `json:"isEligible"`
	Message    string `json:"message"`
}
