package services

import (
	"context"
	"encoding/xml"
	"errors"
	"strconv"
	"strings"
	"time"

	"alfredoptarigan/job-board/internal/models"
	"alfredoptarigan/job-board/internal/repositories"
)

// FeedDateLayout formats the date fields of the feed.
const FeedDateLayout = time.RFC1123

// CategorySeparator joins a job's category labels in the feed.
const CategorySeparator = ", "

type FeedService interface {
	ExportFeed(ctx context.Context, acceptsXML bool) ([]byte, error)
}

type feedService struct {
	jobRepo       repositories.JobRepository
	publisherName string
	publisherURL  string
	now           func() time.Time
}

func NewFeedService(jobRepo repositories.JobRepository, publisherName, publisherURL string) FeedService {
	return &feedService{
		jobRepo:       jobRepo,
		publisherName: publisherName,
		publisherURL:  publisherURL,
		now:           time.Now,
	}
}

// ExportFeed renders every active job as an Indeed XML document, XML header
// included. acceptsXML is the outcome of the caller's content negotiation.
func (s *feedService) ExportFeed(ctx context.Context, acceptsXML bool) ([]byte, error) {
	if !acceptsXML {
		return nil, &Error{Kind: KindNegotiation, Message: MsgMissingAccept, Err: errors.New("client does not accept xml")}
	}

	now := s.now()
	rows, err := s.jobRepo.FindActiveFeed(ctx, now)
	if err != nil {
		return nil, internalError("load feed jobs", err)
	}

	if len(rows) == 0 {
		return nil, notFoundError(MsgNoActiveJobs)
	}

	source := models.IndeedSource{
		Publisher:     s.publisherName,
		PublisherURL:  s.publisherURL,
		LastBuildDate: now.UTC().Format(FeedDateLayout),
		Jobs:          make([]models.IndeedJob, 0, len(rows)),
	}
	for _, row := range rows {
		source.Jobs = append(source.Jobs, toIndeedJob(row))
	}

	body, err := xml.Marshal(source)
	if err != nil {
		return nil, internalError("encode feed", err)
	}

	return append([]byte(xml.Header), body...), nil
}

func toIndeedJob(row models.FeedRow) models.IndeedJob {
	return models.IndeedJob{
		Title:           cdata(row.Title),
		Date:            cdata(row.DatePosted.UTC().Format(FeedDateLayout)),
		ReferenceNumber: cdata(strconv.FormatUint(uint64(row.JobID), 10)),
		RequisitionID:   cdata(row.RequisitionID),
		URL:             cdata(row.URL),
		Company:         cdata(row.CompanyName),
		SourceName:      cdata(row.CompanyHeadquarter),
		City:            cdata(row.City),
		State:           cdata(row.State),
		Country:         cdata(row.Country),
		PostalCode:      cdata(strconv.Itoa(row.PostalCode)),
		StreetAddress:   cdata(row.StreetAddress),
		Email:           cdata(row.CompanyEmail),
		Description:     cdata(row.Description),
		Salary:          cdata(row.Salary),
		Education:       cdata(row.Education),
		JobType:         cdata(row.JobType),
		Category:        cdata(strings.Join(row.Categories, CategorySeparator)),
		Experience:      cdata(row.Experience),
		ExpirationDate:  cdata(row.ExpiryDate.UTC().Format(FeedDateLayout)),
		RemoteType:      cdata(row.RemoteType),
	}
}

func cdata(text string) models.CData {
	return models.CData{Text: text}
}
