package services

import (
	"context"
	"errors"
	"sort"
	"time"

	"alfredoptarigan/job-board/internal/models"
	"alfredoptarigan/job-board/internal/repositories"
)

type fakeJobRepo struct {
	jobs     []models.Job
	feedRows []models.FeedRow
	err      error
	calls    int
}

func (r *fakeJobRepo) Create(_ context.Context, job *models.Job) error {
	r.calls++
	if r.err != nil {
		return r.err
	}
	job.JobID = uint(len(r.jobs) + 1)
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *fakeJobRepo) active(now time.Time) []models.Job {
	var active []models.Job
	for _, job := range r.jobs {
		if job.ExpiryDate.After(now) {
			active = append(active, job)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i].JobID < active[j].JobID })
	return active
}

func (r *fakeJobRepo) FindActive(_ context.Context, now time.Time, limit, offset int) ([]models.Job, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	active := r.active(now)
	if offset >= len(active) {
		return nil, nil
	}
	if limit > len(active)-offset {
		limit = len(active) - offset
	}
	return active[offset : offset+limit], nil
}

func (r *fakeJobRepo) CountActive(_ context.Context, now time.Time) (int64, error) {
	r.calls++
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.active(now))), nil
}

func (r *fakeJobRepo) FindActiveFeed(_ context.Context, now time.Time) ([]models.FeedRow, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	var rows []models.FeedRow
	for _, row := range r.feedRows {
		if row.ExpiryDate.After(now) {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// fakeIntake keeps candidates and applications in memory and restores both
// maps when the unit of work fails, like a rolled back transaction.
type fakeIntake struct {
	candidates   map[string]models.Candidate
	applications map[string]models.Application
	appErr       error
}

func newFakeIntake() *fakeIntake {
	return &fakeIntake{
		candidates:   map[string]models.Candidate{},
		applications: map[string]models.Application{},
	}
}

func (f *fakeIntake) Do(_ context.Context, fn func(repos repositories.IntakeRepositories) error) error {
	candidates := make(map[string]models.Candidate, len(f.candidates))
	for k, v := range f.candidates {
		candidates[k] = v
	}
	applications := make(map[string]models.Application, len(f.applications))
	for k, v := range f.applications {
		applications[k] = v
	}

	err := fn(repositories.IntakeRepositories{
		Candidates:   fakeCandidates{f},
		Applications: fakeApplications{f},
	})
	if err != nil {
		f.candidates = candidates
		f.applications = applications
	}
	return err
}

type fakeCandidates struct{ f *fakeIntake }

func (c fakeCandidates) FindByEmail(_ context.Context, email string) (*models.Candidate, error) {
	candidate, ok := c.f.candidates[email]
	if !ok {
		return nil, &repositories.StoreError{Kind: repositories.KindNotFound, Op: "find candidate", Err: errors.New("record not found")}
	}
	return &candidate, nil
}

func (c fakeCandidates) CreateIfAbsent(_ context.Context, candidate *models.Candidate) (bool, error) {
	if _, ok := c.f.candidates[candidate.CandidateEmail]; ok {
		return false, nil
	}
	c.f.candidates[candidate.CandidateEmail] = *candidate
	return true, nil
}

type fakeApplications struct{ f *fakeIntake }

func (a fakeApplications) Create(_ context.Context, application *models.Application) error {
	if a.f.appErr != nil {
		return a.f.appErr
	}
	if _, ok := a.f.applications[application.ApplicationID]; ok {
		return &repositories.StoreError{Kind: repositories.KindDuplicate, Op: "create application", Err: errors.New("duplicated key")}
	}
	a.f.applications[application.ApplicationID] = *application
	return nil
}
