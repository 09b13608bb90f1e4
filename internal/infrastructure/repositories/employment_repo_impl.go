package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"finuel.backend/internal/domain/entities"
	domainerrors "finuel.backend/internal/domain/errors"
	"finuel.backend/internal/infrastructure/models"
)

// EmploymentRepository implements employment-information storage
type EmploymentRepository struct {
	db *gorm.DB
}

// NewEmploymentRepository creates a new employment repository
func NewEmploymentRepository(db *gorm.DB) *EmploymentRepository {
	return &EmploymentRepository{db: db}
}

// GetByUserID returns the user's employment record
func (r *EmploymentRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (*entities.EmploymentInformation, error) {
	var m models.EmploymentInformation
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEmploymentEntity(&m), nil
}

// Upsert creates or updates the user's employment record
func (r *EmploymentRepository) Upsert(ctx context.Context, info *entities.EmploymentInformation) error {
	m := &models.EmploymentInformation{
		UserID:        info.UserID,
		Occupation:    info.Occupation,
		Sector:        info.Sector,
		Name:          info.Name,
		Role:          info.Role,
		Address:       info.Address,
		StartDate:     info.StartDate,
		EndDate:       info.EndDate,
		MonthlyIncome: info.MonthlyIncome,
		SalaryDate:    info.SalaryDate,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"occupation", "sector", "name", "role", "address",
				"start_date", "end_date", "monthly_income", "salary_date", "updated_at",
			}),
		}).
		Create(m).Error
}

func toEmploymentEntity(m *models.EmploymentInformation) *entities.EmploymentInformation {
	return &entities.EmploymentInformation{
		UserID:        m.UserID,
		Occupation:    m.Occupation,
		Sector:        m.Sector,
		Name:          m.Name,
		Role:          m.Role,
		Address:       m.Address,
		StartDate:     m.StartDate,
		EndDate:       m.EndDate,
		MonthlyIncome: m.MonthlyIncome,
		SalaryDate:    m.SalaryDate,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
