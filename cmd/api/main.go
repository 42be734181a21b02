package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"studykit/internal/adapter"
	"studykit/internal/adapter/gemini"
	"studykit/internal/adapter/textgen"
	"studykit/internal/cache"
	"studykit/internal/config"
	"studykit/internal/handler"
	"studykit/internal/logger"
	"studykit/internal/middleware"
	"studykit/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)

		return err
	}
}

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// The single API key shared by both entry points. Refuse to start
	// without it.
	if cfg.Gemini.APIKey == "" {
		appLogger.Fatal("GEMINI_API_KEY is not set")
	}

	ctx := context.Background()

	// Orchestrator model client (structured output, file parts, chat).
	modelClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		appLogger.Fatal("Failed to create Gemini model client", zap.Error(err))
	}
	appLogger.Info("Gemini model client initialized", zap.String("model", cfg.Gemini.Model))

	// Proxy-path text generator; an independent entry point with its own
	// client shape and model identifier.
	proxyGenerator, err := textgen.NewGoogleAIGenerator(ctx, cfg.Gemini.APIKey, cfg.Gemini.ProxyModel)
	if err != nil {
		appLogger.Fatal("Failed to create proxy text generator", zap.Error(err))
	}
	appLogger.Info("Proxy text generator initialized", zap.String("model", cfg.Gemini.ProxyModel))

	// Optional Redis-backed summary cache.
	var summaryCache *service.SummaryCache
	if cfg.Redis.Address != "" {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		summaryCache = service.NewSummaryCache(adapter.NewRedisCacheAdapter(redisClient), cfg.Cache.SummaryTTL)
		appLogger.Info("Summary cache initialized", zap.String("redis", cfg.Redis.Address))
	} else {
		appLogger.Info("Redis not configured, summary cache disabled")
	}

	// Initialize services
	studyService := service.NewStudyService(modelClient, summaryCache)
	chatRegistry := service.NewChatRegistry()

	// Initialize handlers
	generateHandler := handler.NewGenerateHandler(proxyGenerator)
	studyHandler := handler.NewStudyHandler(studyService)
	chatHandler := handler.NewChatHandler(studyService, chatRegistry)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BodyLimit:    cfg.Server.BodyLimit,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
		MaxAge:       300,
	}))
	app.Use(recover.New())

	// API group
	apiGroup := app.Group("/api")
	apiGroup.Post("/generate-content", generateHandler.GenerateContent)
	apiGroup.Post("/summarize", studyHandler.Summarize)
	apiGroup.Post("/quiz", studyHandler.GenerateQuiz)
	apiGroup.Post("/flashcards", studyHandler.GenerateFlashcards)
	apiGroup.Post("/chat", chatHandler.CreateSession)
	apiGroup.Post("/chat/:id/messages", chatHandler.SendMessage)
	apiGroup.Delete("/chat/:id", chatHandler.DeleteSession)

	// Static assets with single-page-app fallback: any unmatched non-API
	// route serves the index document.
	app.Static("/", cfg.Server.StaticDir)
	indexFile := filepath.Join(cfg.Server.StaticDir, "index.html")
	app.Use(func(c *fiber.Ctx) error {
		if strings.HasPrefix(c.Path(), "/api") {
			return fiber.NewError(fiber.StatusNotFound, "Not found")
		}
		return c.SendFile(indexFile)
	})

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
