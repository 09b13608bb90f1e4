package repositories

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"finuel.backend/internal/domain/entities"
	"finuel.backend/internal/infrastructure/models"
)

// LoanRepository implements the loan reads needed for eligibility checks
type LoanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) *LoanRepository {
	return &LoanRepository{db: db}
}

// HasActiveLoan reports whether the user holds a loan in pending, approved or
// disbursed status.
func (r *LoanRepository) HasActiveLoan(ctx context.Context, userID uuid.UUID) (bool, error) {
	statuses := make([]string, 0, len(entities.ActiveLoanStatuses))
	for _, s := range entities.ActiveLoanStatuses {
		statuses = append(statuses, string(s))
	}

	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Loan{}).
		Where("user_id = ? AND status IN ?", userID, statuses).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
