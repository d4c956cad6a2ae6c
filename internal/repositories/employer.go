package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/job-board/internal/models"
)

// EmployerRepository maintains employers and the category labels attached to
// their jobs. The API only reads them; the seeder writes them.
type EmployerRepository interface {
	Upsert(ctx context.Context, employer *models.Employer) error
	FindByRegistrationNo(ctx context.Context, registrationNo string) (*models.Employer, error)
	ReplaceCategories(ctx context.Context, jobID uint, names []string) error
}

type employerRepository struct {
	db *gorm.DB
}

func NewEmployerRepository(db *gorm.DB) EmployerRepository {
	return &employerRepository{db: db}
}

// Upsert implements EmployerRepository.
func (r *employerRepository) Upsert(ctx context.Context, employer *models.Employer) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_registration_no"}},
			DoUpdates: clause.AssignmentColumns([]string{"company_name", "company_headquarter", "company_email"}),
		}).
		Create(employer).Error

	if err != nil {
		return classify("upsert employer", err)
	}

	return nil
}

// FindByRegistrationNo implements EmployerRepository.
func (r *employerRepository) FindByRegistrationNo(ctx context.Context, registrationNo string) (*models.Employer, error) {
	var employer models.Employer
	if err := r.db.WithContext(ctx).Where("company_registration_no = ?", registrationNo).First(&employer).Error; err != nil {
		return nil, classify("find employer", err)
	}

	return &employer, nil
}

// ReplaceCategories swaps the job's category labels for names, keeping the
// given order as insertion order.
func (r *employerRepository) ReplaceCategories(ctx context.Context, jobID uint, names []string) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Category{}).Error; err != nil {
			return err
		}

		if len(names) == 0 {
			return nil
		}

		categories := make([]models.Category, 0, len(names))
		for _, name := range names {
			categories = append(categories, models.Category{JobID: jobID, CategoryName: name})
		}

		return tx.Create(&categories).Error
	})

	return classify("replace categories", err)
}
