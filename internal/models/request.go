package models

import "encoding/json"

// CreateJobRequest is the body of POST /jobs. Keys follow the column names the
// job board has always published.
type CreateJobRequest struct {
	CompanyRegistrationNo string      `json:"CompanyRegistrationNo" validate:"required"`
	RequisitionID         string      `json:"RequisitionID" validate:"required"`
	Title                 string      `json:"Title" validate:"required"`
	Description           string      `json:"Description" validate:"required"`
	City                  string      `json:"City" validate:"required"`
	State                 string      `json:"State" validate:"required"`
	Country               string      `json:"Country" validate:"required"`
	PostalCode            json.Number `json:"PostalCode" validate:"required,number"`
	StreetAddress         string      `json:"StreetAddress" validate:"required"`
	Salary                string      `json:"Salary" validate:"required"`
	Education             string      `json:"Education" validate:"required"`
	JobType               string      `json:"JobType" validate:"required"`
	Experience            string      `json:"Experience" validate:"required"`
	RemoteType            string      `json:"RemoteType" validate:"required"`
	URL                   string      `json:"URL" validate:"required"`
}

// IndeedApplicationRequest is the Indeed Apply payload posted to
// /jobs/indeed-application.
type IndeedApplicationRequest struct {
	ID              string               `json:"id" validate:"required"`
	Job             IndeedApplicationJob `json:"job"`
	Applicant       IndeedApplicant      `json:"applicant"`
	Locale          string               `json:"locale" validate:"required"`
	AppliedOnMillis int64                `json:"appliedOnMillis" validate:"required,gt=0"`
}

type IndeedApplicationJob struct {
	JobURL      string `json:"jobUrl" validate:"required"`
	JobID       string `json:"jobId" validate:"required,number"`
	JobKey      string `json:"jobKey" validate:"required"`
	JobTitle    string `json:"jobTitle" validate:"required"`
	JobCompany  string `json:"jobCompany" validate:"required"`
	JobLocation string `json:"jobLocation" validate:"required"`
	JobMeta     string `json:"jobMeta,omitempty"`
}

type IndeedApplicant struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Resume      string `json:"resume" validate:"required"`
	FullName    string `json:"fullName" validate:"required"`
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
}
