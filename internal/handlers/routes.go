package handlers

import (
	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Jobs         *JobHandler
	Feed         *FeedHandler
	Applications *ApplicationHandler
	Health       *HealthHandler
}

// RegisterRoutes mounts the job board endpoints on router.
func RegisterRoutes(router fiber.Router, h Handlers) {
	if h.Health != nil {
		router.Get("/health", h.Health.HandleHealth)
	}

	router.Get("/jobs", h.Jobs.HandleListJobs)
	router.Post("/jobs", h.Jobs.HandleCreateJob)
	router.Get("/jobs/indeed.xml", h.Feed.HandleIndeedFeed)
	router.Post("/jobs/indeed-application", h.Applications.HandleIndeedApplication)
}
