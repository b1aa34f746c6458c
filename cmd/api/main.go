package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"alfredoptarigan/jobpost-assistant/internal/config"
	"alfredoptarigan/jobpost-assistant/internal/handlers"
	"alfredoptarigan/jobpost-assistant/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	if cfg.OpenAI.APIKey == "" {
		log.Println("⚠️  OPENAI_API_KEY is not set; upstream OpenAI calls will fail")
	}

	// Initialize storage
	storageService := services.NewAudioStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	// Initialize services
	aiService := services.NewOpenAIService(cfg.OpenAI)
	retryPolicy := services.NewRetryPolicy(cfg.Retry.MaxAttempts, cfg.Retry.Delay)
	jobPostService := services.NewJobPostService(aiService, retryPolicy)
	assistantService := services.NewAssistantService(aiService)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	transcribeHandler := handlers.NewTranscribeHandler(storageService, jobPostService)
	chatHandler := handlers.NewChatHandler(assistantService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Voice Job Post Assistant API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		// Per-file size is checked in storage; the body limit only needs to
		// leave room for multipart framing on a maximum-size upload.
		BodyLimit:    int(cfg.Storage.MaxFileSize) + (1 << 20),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/transcribe", transcribeHandler.HandleTranscribe)
	api.Post("/ask-ai", chatHandler.HandleAsk)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Voice Job Post Assistant API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/transcribe",
				"POST /api/v1/ask-ai",
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
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
