package repositories

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"alfredoptarigan/job-board/internal/models"
)

type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	FindActive(ctx context.Context, now time.Time, limit, offset int) ([]models.Job, error)
	CountActive(ctx context.Context, now time.Time) (int64, error)
	FindActiveFeed(ctx context.Context, now time.Time) ([]models.FeedRow, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

// Create implements JobRepository.
func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.db.WithContext(ctx).Create(job).Error; err != nil {
		return classify("create job", err)
	}
	return nil
}

// FindActive implements JobRepository.
func (r *jobRepository) FindActive(ctx context.Context, now time.Time, limit, offset int) ([]models.Job, error) {
	var jobs []models.Job
	err := r.db.WithContext(ctx).
		Where("expiry_date > ?", now).
		Order("job_id ASC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error

	if err != nil {
		return nil, classify("find active jobs", err)
	}

	return jobs, nil
}

// CountActive implements JobRepository.
func (r *jobRepository) CountActive(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("expiry_date > ?", now).
		Count(&count).Error

	if err != nil {
		return 0, classify("count active jobs", err)
	}

	return count, nil
}

// FindActiveFeed implements JobRepository.
func (r *jobRepository) FindActiveFeed(ctx context.Context, now time.Time) ([]models.FeedRow, error) {
	query, args, err := activeFeedQuery(now)
	if err != nil {
		return nil, classify("build feed query", err)
	}

	var rows []models.FeedRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, classify("find feed jobs", err)
	}

	return rows, nil
}

// activeFeedQuery joins every active job with its employer and folds its
// categories, in insertion order, into one array. Jobs without categories get
// an empty array.
func activeFeedQuery(now time.Time) (string, []interface{}, error) {
	return sq.Select(
		"j.job_id",
		"j.title",
		"j.date_posted",
		"j.requisition_id",
		"j.url",
		"e.company_name",
		"e.company_headquarter",
		"j.city",
		"j.state",
		"j.country",
		"j.postal_code",
		"j.street_address",
		"e.company_email",
		"j.description",
		"j.salary",
		"j.education",
		"j.job_type",
		"COALESCE(array_agg(c.category_name ORDER BY c.category_id) FILTER (WHERE c.category_id IS NOT NULL), '{}') AS categories",
		"j.experience",
		"j.expiry_date",
		"j.remote_type",
	).
		From("jobs j").
		Join("employers e ON e.company_registration_no = j.company_registration_no").
		LeftJoin("categories c ON c.job_id = j.job_id").
		Where(sq.Gt{"j.expiry_date": now}).
		GroupBy("j.job_id", "e.company_registration_no").
		OrderBy("j.job_id ASC").
		ToSql()
}
