package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-board/internal/models"
	"alfredoptarigan/job-board/internal/services"
)

type ApplicationHandler struct {
	applicationService services.ApplicationService
}

func NewApplicationHandler(applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// HandleIndeedApplication handles POST /jobs/indeed-application
func (h *ApplicationHandler) HandleIndeedApplication(c *fiber.Ctx) error {
	var req models.IndeedApplicationRequest

	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, services.MsgMissingFields)
	}

	application, err := h.applicationService.Submit(c.UserContext(), &req)
	if err != nil {
		return respondError(c, err)
	}

	return respond(c, fiber.StatusCreated, models.MessageResponse{
		Message: fmt.Sprintf("%s has been created", application.ApplicationID),
	}, statusMeta(fiber.StatusCreated))
}
