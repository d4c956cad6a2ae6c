package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	"alfredoptarigan/job-board/internal/models"
	"alfredoptarigan/job-board/internal/repositories"
)

type JobService interface {
	ListJobs(ctx context.Context, page, pageSize int) (*models.JobPage, error)
	CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error)
}

type jobService struct {
	jobRepo  repositories.JobRepository
	validate *validator.Validate
	now      func() time.Time
}

func NewJobService(jobRepo repositories.JobRepository) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		validate: newValidator(),
		now:      time.Now,
	}
}

// ListJobs returns one page of active jobs ordered by job ID. An empty page is
// a not-found error whether there are no active jobs at all or the page lies
// past the last one.
func (s *jobService) ListJobs(ctx context.Context, page, pageSize int) (*models.JobPage, error) {
	if page < 1 || pageSize < 1 {
		return nil, validationError(MsgInvalidPage, fmt.Errorf("page=%d pageSize=%d", page, pageSize))
	}

	// Offset would overflow; no store can hold that many rows anyway.
	if page-1 > math.MaxInt/pageSize {
		return nil, notFoundError(MsgNoActiveJobs)
	}

	now := s.now()
	offset := (page - 1) * pageSize

	jobs, err := s.jobRepo.FindActive(ctx, now, pageSize, offset)
	if err != nil {
		return nil, internalError("list active jobs", err)
	}

	if len(jobs) == 0 {
		return nil, notFoundError(MsgNoActiveJobs)
	}

	total, err := s.jobRepo.CountActive(ctx, now)
	if err != nil {
		return nil, internalError("count active jobs", err)
	}

	return &models.JobPage{
		Jobs:       jobs,
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages(total, pageSize),
	}, nil
}

// CreateJob validates and stores a new posting. The posting date is now and
// the expiry date JobTTLDays calendar days later.
func (s *jobService) CreateJob(ctx context.Context, req *models.CreateJobRequest) (*models.Job, error) {
	if err := checkRequest(s.validate, req, MsgMissingFields); err != nil {
		return nil, err
	}

	postalCode, err := strconv.Atoi(req.PostalCode.String())
	if err != nil {
		return nil, validationError(MsgMissingFields, fmt.Errorf("postal code: %w", err))
	}

	now := s.now()
	job := &models.Job{
		CompanyRegistrationNo: req.CompanyRegistrationNo,
		RequisitionID:         req.RequisitionID,
		Title:                 req.Title,
		Description:           req.Description,
		City:                  req.City,
		State:                 req.State,
		Country:               req.Country,
		PostalCode:            postalCode,
		StreetAddress:         req.StreetAddress,
		Salary:                req.Salary,
		Education:             req.Education,
		JobType:               req.JobType,
		Experience:            req.Experience,
		RemoteType:            req.RemoteType,
		URL:                   req.URL,
		DatePosted:            now,
		ExpiryDate:            now.AddDate(0, 0, models.JobTTLDays),
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, internalError("create job", err)
	}

	log.Printf("✅ Job %d (%s) created, expires %s\n", job.JobID, job.Title, job.ExpiryDate.Format(time.RFC3339))
	return job, nil
}

func totalPages(total int64, pageSize int) int {
	size := int64(pageSize)
	pages := total / size
	if total%size != 0 {
		pages++
	}
	return int(pages)
}
