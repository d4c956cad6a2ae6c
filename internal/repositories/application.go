package repositories

import (
	"context"

	"gorm.io/gorm"

	"alfredoptarigan/job-board/internal/models"
)

type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository. A reused application ID surfaces
// as KindDuplicate.
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	if err := r.db.WithContext(ctx).Create(application).Error; err != nil {
		return classify("create application", err)
	}
	return nil
}

// IntakeRepositories are the repositories an application intake touches,
// bound to a single transaction.
type IntakeRepositories struct {
	Candidates   CandidateRepository
	Applications ApplicationRepository
}

// IntakeUnitOfWork runs fn inside one database transaction. The transaction
// commits when fn returns nil and rolls back otherwise.
type IntakeUnitOfWork interface {
	Do(ctx context.Context, fn func(repos IntakeRepositories) error) error
}

type intakeUnitOfWork struct {
	db *gorm.DB
}

func NewIntakeUnitOfWork(db *gorm.DB) IntakeUnitOfWork {
	return &intakeUnitOfWork{db: db}
}

// Do implements IntakeUnitOfWork.
func (u *intakeUnitOfWork) Do(ctx context.Context, fn func(repos IntakeRepositories) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(IntakeRepositories{
			Candidates:   NewCandidateRepository(tx),
			Applications: NewApplicationRepository(tx),
		})
	})

	return classify("commit application intake", err)
}
