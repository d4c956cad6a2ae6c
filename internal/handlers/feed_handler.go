package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/job-board/internal/services"
)

type FeedHandler struct {
	feedService services.FeedService
}

func NewFeedHandler(feedService services.FeedService) *FeedHandler {
	return &FeedHandler{
		feedService: feedService,
	}
}

// HandleIndeedFeed handles GET /jobs/indeed.xml. Errors are still rendered
// as JSON envelopes.
func (h *FeedHandler) HandleIndeedFeed(c *fiber.Ctx) error {
	acceptsXML := c.Accepts(fiber.MIMEApplicationXML, fiber.MIMETextXML) != ""

	body, err := h.feedService.ExportFeed(c.UserContext(), acceptsXML)
	if err != nil {
		return respondError(c, err)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationXML)
	return c.Status(fiber.StatusOK).Send(body)
}
