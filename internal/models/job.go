package models

import (
	"time"
)

// JobTTLDays is how many calendar days a posting stays active after it is published.
const JobTTLDays = 30

type Employer struct {
	CompanyRegistrationNo string `gorm:"type:text;primaryKey" json:"company_registration_no" yaml:"companyRegistrationNo"`
	CompanyName           string `gorm:"type:text;not null" json:"company_name" yaml:"companyName"`
	CompanyHeadquarter    string `gorm:"type:text" json:"company_headquarter" yaml:"companyHeadquarter"`
	CompanyEmail          string `gorm:"type:text" json:"company_email" yaml:"companyEmail"`

	Jobs []Job `gorm:"foreignKey:CompanyRegistrationNo;references:CompanyRegistrationNo" json:"-" yaml:"-"`
}

func (Employer) TableName() string {
	return "employers"
}

type Job struct {
	JobID                 uint      `gorm:"column:job_id;primaryKey;autoIncrement" json:"job_id"`
	CompanyRegistrationNo string    `gorm:"type:text;not null;index" json:"company_registration_no"`
	RequisitionID         string    `gorm:"type:text;not null" json:"requisition_id"`
	Title                 string    `gorm:"type:text;not null" json:"title"`
	Description           string    `gorm:"type:text;not null" json:"description"`
	City                  string    `gorm:"type:text" json:"city"`
	State                 string    `gorm:"type:text" json:"state"`
	Country               string    `gorm:"type:text" json:"country"`
	PostalCode            int       `gorm:"type:integer" json:"postal_code"`
	StreetAddress         string    `gorm:"type:text" json:"street_address"`
	Salary                string    `gorm:"type:text" json:"salary"`
	Education             string    `gorm:"type:text" json:"education"`
	JobType               string    `gorm:"type:text" json:"job_type"`
	Experience            string    `gorm:"type:text" json:"experience"`
	RemoteType            string    `gorm:"type:text" json:"remote_type"`
	URL                   string    `gorm:"column:url;type:text" json:"url"`
	DatePosted            time.Time `gorm:"type:timestamptz;not null" json:"date_posted"`
	ExpiryDate            time.Time `gorm:"type:timestamptz;not null;index" json:"expiry_date"`

	// Relations
	Employer   Employer   `gorm:"foreignKey:CompanyRegistrationNo;references:CompanyRegistrationNo" json:"-"`
	Categories []Category `gorm:"foreignKey:JobID;references:JobID" json:"-"`
}

func (Job) TableName() string {
	return "jobs"
}

type Category struct {
	CategoryID   uint   `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	JobID        uint   `gorm:"column:job_id;not null;index" json:"job_id"`
	CategoryName string `gorm:"type:text;not null" json:"category_name"`
}

func (Category) TableName() string {
	return "categories"
}
