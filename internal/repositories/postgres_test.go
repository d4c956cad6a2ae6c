package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"alfredoptarigan/job-board/internal/config"
	"alfredoptarigan/job-board/internal/models"
)

// openTestDB connects to the database named by the DB_* variables and returns
// a transaction that is rolled back when the test ends.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("DB_HOST") == "" {
		t.Skip("DB_HOST not set; skipping Postgres test")
	}

	db, err := config.InitDatabase(config.Load())
	if err != nil {
		t.Fatalf("init database: %v", err)
	}

	tx := db.Begin()
	if tx.Error != nil {
		t.Fatalf("begin: %v", tx.Error)
	}
	t.Cleanup(func() {
		tx.Rollback()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return tx
}

func seedEmployerJob(t *testing.T, ctx context.Context, db *gorm.DB, registrationNo string, expiry time.Time) *models.Job {
	t.Helper()

	job := &models.Job{
		CompanyRegistrationNo: registrationNo,
		RequisitionID:         "REQ-" + registrationNo,
		Title:                 "Engineer",
		Description:           "Build things",
		PostalCode:            123456,
		DatePosted:            expiry.AddDate(0, 0, -models.JobTTLDays),
		ExpiryDate:            expiry,
	}
	if err := NewJobRepository(db).Create(ctx, job); err != nil {
		t.Fatalf("create job: %v", err)
	}
	return job
}

func TestPostgresActiveFeed(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	now := time.Now().UTC()

	registrationNo := uuid.NewString()
	employers := NewEmployerRepository(db)
	if err := employers.Upsert(ctx, &models.Employer{
		CompanyRegistrationNo: registrationNo,
		CompanyName:           "Acme Robotics",
		CompanyEmail:          "careers@acme.example",
	}); err != nil {
		t.Fatalf("upsert employer: %v", err)
	}

	tagged := seedEmployerJob(t, ctx, db, registrationNo, now.Add(time.Hour))
	untagged := seedEmployerJob(t, ctx, db, registrationNo, now.Add(2*time.Hour))
	expired := seedEmployerJob(t, ctx, db, registrationNo, now.Add(-time.Hour))

	if err := employers.ReplaceCategories(ctx, tagged.JobID, []string{"Robotics", "Engineering"}); err != nil {
		t.Fatalf("replace categories: %v", err)
	}
	if err := employers.ReplaceCategories(ctx, expired.JobID, []string{"Stale"}); err != nil {
		t.Fatalf("replace categories: %v", err)
	}

	rows, err := NewJobRepository(db).FindActiveFeed(ctx, now)
	if err != nil {
		t.Fatalf("find active feed: %v", err)
	}

	byID := map[uint]models.FeedRow{}
	for _, row := range rows {
		byID[row.JobID] = row
	}

	if _, ok := byID[expired.JobID]; ok {
		t.Fatalf("expired job %d is in the feed", expired.JobID)
	}

	row, ok := byID[tagged.JobID]
	if !ok {
		t.Fatalf("job %d missing from the feed", tagged.JobID)
	}
	if row.CompanyName != "Acme Robotics" || row.CompanyEmail != "careers@acme.example" {
		t.Fatalf("employer columns not joined: %+v", row)
	}
	if len(row.Categories) != 2 || row.Categories[0] != "Robotics" || row.Categories[1] != "Engineering" {
		t.Fatalf("expected categories in insertion order, got %v", row.Categories)
	}

	row, ok = byID[untagged.JobID]
	if !ok {
		t.Fatalf("job %d missing from the feed", untagged.JobID)
	}
	if row.Categories == nil || len(row.Categories) != 0 {
		t.Fatalf("expected an empty category array, got %#v", row.Categories)
	}
}

func TestPostgresCandidateAndApplication(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	registrationNo := uuid.NewString()
	employers := NewEmployerRepository(db)
	if _, err := employers.FindByRegistrationNo(ctx, registrationNo); KindOf(err) != KindNotFound {
		t.Fatalf("expected unknown employer, got %v", err)
	}
	for _, name := range []string{"Acme", "Acme Robotics"} {
		if err := employers.Upsert(ctx, &models.Employer{CompanyRegistrationNo: registrationNo, CompanyName: name}); err != nil {
			t.Fatalf("upsert employer: %v", err)
		}
	}
	employer, err := employers.FindByRegistrationNo(ctx, registrationNo)
	if err != nil || employer.CompanyName != "Acme Robotics" {
		t.Fatalf("expected upsert to update the name, got %+v %v", employer, err)
	}
	job := seedEmployerJob(t, ctx, db, registrationNo, time.Now().Add(time.Hour))

	candidates := NewCandidateRepository(db)
	email := uuid.NewString() + "@example.com"

	if _, err := candidates.FindByEmail(ctx, email); KindOf(err) != KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}

	created, err := candidates.CreateIfAbsent(ctx, &models.Candidate{CandidateEmail: email, CandidateFullName: "Jane Tan"})
	if err != nil || !created {
		t.Fatalf("expected first insert to create, got %v %v", created, err)
	}

	created, err = candidates.CreateIfAbsent(ctx, &models.Candidate{CandidateEmail: email, CandidateFullName: "Someone Else"})
	if err != nil || created {
		t.Fatalf("expected second insert to be a no-op, got %v %v", created, err)
	}

	stored, err := candidates.FindByEmail(ctx, email)
	if err != nil {
		t.Fatalf("find candidate: %v", err)
	}
	if stored.CandidateFullName != "Jane Tan" {
		t.Fatalf("existing candidate was overwritten: %+v", stored)
	}

	applications := NewApplicationRepository(db)
	application := models.Application{
		ApplicationID:     uuid.NewString(),
		JobID:             job.JobID,
		CandidateEmail:    email,
		AppliedOn:         time.Now().UTC(),
		ApplicationStatus: models.StatusSubmitted,
	}
	if err := applications.Create(ctx, &application); err != nil {
		t.Fatalf("create application: %v", err)
	}

	// A failed statement aborts the transaction, so this check runs last.
	again := application
	if err := applications.Create(ctx, &again); KindOf(err) != KindDuplicate {
		t.Fatalf("expected duplicate, got %v", err)
	}
}
