package repositories

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"alfredoptarigan/job-board/internal/models"
)

type CandidateRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.Candidate, error)
	CreateIfAbsent(ctx context.Context, candidate *models.Candidate) (bool, error)
}

type candidateRepository struct {
	db *gorm.DB
}

func NewCandidateRepository(db *gorm.DB) CandidateRepository {
	return &candidateRepository{db: db}
}

// FindByEmail implements CandidateRepository. A missing candidate is reported
// as a StoreError of KindNotFound.
func (r *candidateRepository) FindByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var candidate models.Candidate
	if err := r.db.WithContext(ctx).Where("candidate_email = ?", email).First(&candidate).Error; err != nil {
		return nil, classify("find candidate", err)
	}

	return &candidate, nil
}

// CreateIfAbsent inserts the candidate unless a row with the same email
// exists, in which case the stored row is left untouched. It reports whether
// a row was inserted.
func (r *candidateRepository) CreateIfAbsent(ctx context.Context, candidate *models.Candidate) (bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "candidate_email"}},
			DoNothing: true,
		}).
		Create(candidate)

	if result.Error != nil {
		return false, classify("create candidate", result.Error)
	}

	return result.RowsAffected > 0, nil
}
