package main

import (
	"context"
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

	"alfredoptarigan/cv-tailor/internal/config"
	"alfredoptarigan/cv-tailor/internal/handlers"
	"alfredoptarigan/cv-tailor/internal/repositories"
	"alfredoptarigan/cv-tailor/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.Println("✅ Config loaded successfully")

	ctx := context.Background()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initializes repositories
	docRepo := repositories.NewDocumentRepository(db)
	resultRepo := repositories.NewTailoringRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	storage, err := services.NewObjectStorage(ctx, cfg.Storage)
	if err != nil {
		log.Fatalf("❌ Failed to initialize storage: %v", err)
	}
	if err := storage.EnsureReady(ctx); err != nil {
		log.Fatalf("❌ Storage is not ready: %v", err)
	}
	log.Printf("✅ Storage initialized (%s)\n", cfg.Storage.Driver)

	// Completion cache is optional
	var cache services.CompletionCache
	if cfg.Cache.RedisURL != "" {
		cache, err = services.NewRedisCompletionCache(ctx, cfg.Cache.RedisURL, cfg.Cache.TTL)
		if err != nil {
			log.Printf("⚠️ Completion cache disabled: %v\n", err)
			cache = nil
		} else {
			log.Println("✅ Completion cache connected")
		}
	}

	// Initialize LLM
	llm, err := services.NewLLMService(cfg, cache)
	if err != nil {
		log.Fatalf("❌ Failed to initialize LLM: %v", err)
	}
	log.Printf("✅ LLM initialized (%s)\n", llm.ModelName())

	parser := services.NewDocumentParserService()
	docService := services.NewDocumentService(docRepo, storage, parser)
	tailorService := services.NewTailorService(
		llm,
		resultRepo,
		storage,
		services.NewDocxRenderer(),
		cfg.LLM.MaxRetries,
		cfg.LLM.Timeout,
	)
	log.Println("✅ Services initialized successfully")

	// Initialize Handlers
	tailorHandler := handlers.NewTailorHandler(tailorService, cfg.Normalizer.SplitEmbeddedSections)
	uploadHandler := handlers.NewUploadHandler(
		tailorService,
		docService,
		parser,
		cfg.Storage.MaxFileSize,
		cfg.Normalizer.SplitEmbeddedSections,
	)
	resultHandler := handlers.NewResultHandler(tailorService)
	documentHandler := handlers.NewDocumentHandler(docService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "CV Tailor API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.LLM.Timeout + 30*time.Second,
		// CV and job description files plus form fields
		BodyLimit:    int(2*cfg.Storage.MaxFileSize) + 1<<20,
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
		AllowMethods: "POST,GET,OPTIONS",
		AllowHeaders: "authorization, x-client-info, apikey, content-type",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"model":  llm.ModelName(),
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/tailor", tailorHandler.HandleTailor)
	api.Post("/tailor/upload", uploadHandler.HandleTailorUpload)
	api.Get("/results/:id", resultHandler.HandleGetResult)
	api.Get("/results/:id/download", resultHandler.HandleDownload)
	api.Get("/users/:userId/results", resultHandler.HandleListResults)
	api.Get("/documents/:id", documentHandler.HandleGetDocument)
	api.Get("/documents/:id/download", documentHandler.HandleDownloadDocument)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "CV Tailor API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/tailor",
				"POST /api/v1/tailor/upload",
				"GET /api/v1/results/:id",
				"GET /api/v1/results/:id/download",
				"GET /api/v1/users/:userId/results",
				"GET /api/v1/documents/:id",
				"GET /api/v1/documents/:id/download",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(cfg.LLM.Timeout); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
		if cache != nil {
			if err := cache.Close(); err != nil {
				log.Printf("⚠️ Failed to close completion cache: %v", err)
			}
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

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
		"error":   "Request failed",
		"details": err.Error(),
	})
}
