package services

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"alfredoptarigan/job-board/internal/models"
	"alfredoptarigan/job-board/internal/repositories"
)

type ApplicationService interface {
	Submit(ctx context.Context, req *models.IndeedApplicationRequest) (*models.Application, error)
}

type applicationService struct {
	uow      repositories.IntakeUnitOfWork
	validate *validator.Validate
}

func NewApplicationService(uow repositories.IntakeUnitOfWork) ApplicationService {
	return &applicationService{
		uow:      uow,
		validate: newValidator(),
	}
}

// Submit records an Indeed application. The candidate is looked up by email
// and created only when absent; an existing candidate is never modified. The
// candidate and the application are written in one transaction.
func (s *applicationService) Submit(ctx context.Context, req *models.IndeedApplicationRequest) (*models.Application, error) {
	req.Applicant.Email = normalizeEmail(req.Applicant.Email)

	if err := checkRequest(s.validate, req, MsgMissingFields); err != nil {
		return nil, err
	}

	jobID, err := strconv.ParseUint(req.Job.JobID, 10, 64)
	if err != nil {
		return nil, validationError(MsgMissingFields, fmt.Errorf("job id: %w", err))
	}

	email := req.Applicant.Email
	application := &models.Application{
		ApplicationID:     req.ID,
		JobID:             uint(jobID),
		CandidateEmail:    email,
		AppliedOn:         time.UnixMilli(req.AppliedOnMillis).UTC(),
		ApplicationStatus: models.StatusSubmitted,
	}

	err = s.uow.Do(ctx, func(repos repositories.IntakeRepositories) error {
		if err := ensureCandidate(ctx, repos.Candidates, email, &req.Applicant); err != nil {
			return err
		}
		return repos.Applications.Create(ctx, application)
	})
	if err != nil {
		if repositories.KindOf(err) == repositories.KindDuplicate {
			log.Printf("⚠️  Application %s already exists\n", req.ID)
			return nil, &Error{Kind: KindConflict, Message: MsgApplicationExists, Err: err}
		}
		return nil, internalError("submit application", err)
	}

	log.Printf("✅ Application %s recorded for job %d\n", application.ApplicationID, application.JobID)
	return application, nil
}

func ensureCandidate(ctx context.Context, candidates repositories.CandidateRepository, email string, applicant *models.IndeedApplicant) error {
	_, err := candidates.FindByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if repositories.KindOf(err) != repositories.KindNotFound {
		return err
	}

	created, err := candidates.CreateIfAbsent(ctx, &models.Candidate{
		CandidateEmail:     email,
		CandidateFullName:  applicant.FullName,
		CandidateFirstName: applicant.FirstName,
		CandidateLastName:  applicant.LastName,
		CandidatePhone:     applicant.PhoneNumber,
		CandidateResume:    applicant.Resume,
	})
	if err != nil {
		return err
	}

	if created {
		log.Printf("✅ Candidate %s added successfully\n", applicant.FullName)
	}
	return nil
}

// normalizeEmail makes candidate deduplication insensitive to case and
// surrounding whitespace.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
