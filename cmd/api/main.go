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

	"alfredoptarigan/cv-agent/internal/config"
	"alfredoptarigan/cv-agent/internal/handlers"
	"alfredoptarigan/cv-agent/internal/repositories"
	"alfredoptarigan/cv-agent/internal/services"
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

	docRepo := repositories.NewDocumentRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize storage
	uploadStorage := services.NewStorageService(cfg.Storage.UploadPath)
	if err := uploadStorage.EnsureDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	tailoredStorage := services.NewStorageService(cfg.Storage.TailoredPath)
	if err := tailoredStorage.EnsureDir(); err != nil {
		log.Fatalf("❌ Failed to create tailored CV directory: %v", err)
	}

	// Initialize Gemini AI
	geminiService, err := services.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	log.Println("✅ Gemini AI initialized successfully")

	matcher := services.NewMatcher(geminiService, cfg.Gemini.Temperature, cfg.Gemini.MaxRetries)
	scraper := services.NewJobScraper(services.ScraperOptions{
		Timeout:        cfg.Scraper.Timeout,
		UserAgent:      cfg.Scraper.UserAgent,
		UseBrowser:     cfg.Scraper.UseBrowser,
		BrowserTimeout: cfg.Scraper.BrowserTimeout,
	})

	agentService := services.NewCVAgentService(
		uploadStorage,
		services.NewTextExtractor(),
		services.NewJobSourceResolver(scraper),
		matcher,
		matcher,
		services.NewDocumentWriter(tailoredStorage),
		docRepo,
	)
	log.Println("✅ Services initialized successfully")

	janitor := services.NewJanitor(
		docRepo,
		tailoredStorage,
		cfg.Retention.MaxAge,
		cfg.Retention.SweepInterval,
	)
	janitor.Start(context.Background())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "AI CV Agent API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		UnescapePath: true,
		ErrorHandler: handlers.ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS",
		AllowHeaders: "*",
	}))

	app.Static("/static", cfg.Storage.StaticPath)

	handlers.RegisterRoutes(app, handlers.Handlers{
		Upload:   handlers.NewUploadHandler(docRepo, uploadStorage, cfg.Storage.MaxFileSize),
		Analysis: handlers.NewAnalysisHandler(agentService),
		Tailored: handlers.NewTailoredHandler(docRepo, tailoredStorage),
	})
	log.Println("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		janitor.Stop()
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
