package models

import (
	"encoding/xml"
	"time"

	"github.com/lib/pq"
)

// FeedRow is one active job joined with its employer and aggregated categories.
type FeedRow struct {
	JobID              uint           `gorm:"column:job_id"`
	Title              string         `gorm:"column:title"`
	DatePosted         time.Time      `gorm:"column:date_posted"`
	RequisitionID      string         `gorm:"column:requisition_id"`
	URL                string         `gorm:"column:url"`
	CompanyName        string         `gorm:"column:company_name"`
	CompanyHeadquarter string         `gorm:"column:company_headquarter"`
	City               string         `gorm:"column:city"`
	State              string         `gorm:"column:state"`
	Country            string         `gorm:"column:country"`
	PostalCode         int            `gorm:"column:postal_code"`
	StreetAddress      string         `gorm:"column:street_address"`
	CompanyEmail       string         `gorm:"column:company_email"`
	Description        string         `gorm:"column:description"`
	Salary             string         `gorm:"column:salary"`
	Education          string         `gorm:"column:education"`
	JobType            string         `gorm:"column:job_type"`
	Categories         pq.StringArray `gorm:"column:categories;type:text[]"`
	Experience         string         `gorm:"column:experience"`
	ExpiryDate         time.Time      `gorm:"column:expiry_date"`
	RemoteType         string         `gorm:"column:remote_type"`
}

// CData marshals its text inside a CDATA section.
type CData struct {
	Text string `xml:",cdata"`
}

// IndeedSource is the root of the Indeed XML job feed.
type IndeedSource struct {
	XMLName       xml.Name    `xml:"source"`
	Publisher     string      `xml:"publisher"`
	PublisherURL  string      `xml:"publisherurl"`
	LastBuildDate string      `xml:"lastbuilddate"`
	Jobs          []IndeedJob `xml:"jobs>job"`
}

// IndeedJob fields are declared in the order the feed emits them.
type IndeedJob struct {
	Title           CData `xml:"title"`
	Date            CData `xml:"date"`
	ReferenceNumber CData `xml:"referencenumber"`
	RequisitionID   CData `xml:"requisitionid"`
	URL             CData `xml:"url"`
	Company         CData `xml:"company"`
	SourceName      CData `xml:"sourcename"`
	City            CData `xml:"city"`
	State           CData `xml:"state"`
	Country         CData `xml:"country"`
	PostalCode      CData `xml:"postalcode"`
	StreetAddress   CData `xml:"streetaddress"`
	Email           CData `xml:"email"`
	Description     CData `xml:"description"`
	Salary          CData `xml:"salary"`
	Education       CData `xml:"education"`
	JobType         CData `xml:"jobtype"`
	Category        CData `xml:"category"`
	Experience      CData `xml:"experience"`
	ExpirationDate  CData `xml:"expirationdate"`
	RemoteType      CData `xml:"remotetype"`
}
