package models

import (
	"time"
)

type ApplicationStatus string

const (
	StatusSubmitted ApplicationStatus = "Application Submitted"
)

type Candidate struct {
	CandidateEmail     string `gorm:"type:text;primaryKey" json:"candidate_email"`
	CandidateFullName  string `gorm:"type:text;not null" json:"candidate_full_name"`
	CandidateFirstName string `gorm:"type:text" json:"candidate_first_name"`
	CandidateLastName  string `gorm:"type:text" json:"candidate_last_name"`
	CandidatePhone     string `gorm:"type:text" json:"candidate_phone"`
	CandidateResume    string `gorm:"type:text" json:"candidate_resume"`
}

func (Candidate) TableName() string {
	return "candidates"
}

type Application struct {
	ApplicationID     string            `gorm:"type:text;primaryKey" json:"application_id"`
	JobID             uint              `gorm:"column:job_id;not null;index" json:"job_id"`
	CandidateEmail    string            `gorm:"type:text;not null;index" json:"candidate_email"`
	AppliedOn         time.Time         `gorm:"type:timestamptz;not null" json:"applied_on"`
	ApplicationStatus ApplicationStatus `gorm:"type:text;not null;default:'Application Submitted'" json:"application_status"`

	// Relations
	Job       Job       `gorm:"foreignKey:JobID;references:JobID" json:"-"`
	Candidate Candidate `gorm:"foreignKey:CandidateEmail;references:CandidateEmail" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}
