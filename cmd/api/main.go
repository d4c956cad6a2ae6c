package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"alfredoptarigan/job-board/internal/config"
	"alfredoptarigan/job-board/internal/handlers"
	"alfredoptarigan/job-board/internal/repositories"
	"alfredoptarigan/job-board/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("❌ Failed to access connection pool: %v", err)
	}

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	intake := repositories.NewIntakeUnitOfWork(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	jobService := services.NewJobService(jobRepo)
	feedService := services.NewFeedService(jobRepo, cfg.Feed.PublisherName, cfg.Feed.PublisherURL)
	applicationService := services.NewApplicationService(intake)
	log.Println("✅ Services initialized successfully")

	// Initialize handlers
	routes := handlers.Handlers{
		Jobs:         handlers.NewJobHandler(jobService, cfg.Pagination.DefaultPageSize),
		Feed:         handlers.NewFeedHandler(feedService),
		Applications: handlers.NewApplicationHandler(applicationService),
		Health:       handlers.NewHealthHandler(sqlDB),
	}
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Board API",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path} ${respHeader:X-Request-ID}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.Server.AllowOrigins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	// Routes
	handlers.RegisterRoutes(app, routes)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Job Board API",
			"version": "1.0.0",
			"endpoints": []string{
				"GET /jobs",
				"POST /jobs",
				"GET /jobs/indeed.xml",
				"POST /jobs/indeed-application",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		if err := sqlDB.Close(); err != nil {
			log.Printf("❌ Failed to close database: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
