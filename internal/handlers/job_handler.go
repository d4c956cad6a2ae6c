package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-board/internal/models"
	"alfredoptarigan/job-board/internal/services"
)

type JobHandler struct {
	jobService      services.JobService
	defaultPageSize int
}

func NewJobHandler(jobService services.JobService, defaultPageSize int) *JobHandler {
	if defaultPageSize < 1 {
		defaultPageSize = 10
	}

	return &JobHandler{
		jobService:      jobService,
		defaultPageSize: defaultPageSize,
	}
}

// HandleListJobs handles GET /jobs
func (h *JobHandler) HandleListJobs(c *fiber.Ctx) error {
	page := queryInt(c, "page", 1)
	pageSize := queryInt(c, "pageSize", h.defaultPageSize)

	result, err := h.jobService.ListJobs(c.UserContext(), page, pageSize)
	if err != nil {
		return respondError(c, err)
	}

	meta := statusMeta(fiber.StatusOK)
	meta.Page = result.Page
	meta.PageSize = result.PageSize
	meta.TotalItems = result.TotalItems
	meta.TotalPages = result.TotalPages

	return respond(c, fiber.StatusOK, result.Jobs, meta)
}

// HandleCreateJob handles POST /jobs
func (h *JobHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.CreateJobRequest

	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, services.MsgMissingFields)
	}

	job, err := h.jobService.CreateJob(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusCreated, models.CreateJobResponse{
		Message:    fmt.Sprintf("%s has been created", job.Title),
		ExpiryDate: job.ExpiryDate,
	}, statusMeta(fiber.StatusCreated))
}
