// @title Trivia Generation API
// @version 1.0
// @description LLM-backed trivia question generation service.
// @host localhost:8090
// @BasePath /api
// @schemes http https
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sanjaykbiswas/trivia-app-sub001/internal/adapter"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/adapter/embedding"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/adapter/llm"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/cache"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/config"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/database"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/handler"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/llmtext"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/logger"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/middleware"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/repository"
	"github.com/sanjaykbiswas/trivia-app-sub001/internal/service"

	_ "github.com/sanjaykbiswas/trivia-app-sub001/cmd/api/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		path := c.Path()
		method := c.Method()

		err := c.Next()

		duration := time.Since(start)
		status := c.Response().StatusCode()

		logger.Get().Info("HTTP Request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("duration", duration),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		)

		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		panic(err)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	// LLM gateway for question, answer and guideline generation
	gateway, err := llm.NewGateway(cfg.LLM, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create LLM gateway", zap.Error(err))
	}
	appLogger.Info("LLM gateway initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", cfg.LLM.Model))

	embeddingService, err := embedding.NewService(cfg.Embedding, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to create embedding service", zap.Error(err))
	}
	appLogger.Info("Embedding service initialized",
		zap.String("provider", cfg.Embedding.Provider),
		zap.String("model", cfg.Embedding.Model))

	// Connect to database
	db, err := database.NewSQLXOracleDB(cfg.GetDSN())
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Successfully connected to database")

	// Initialize repositories
	questionRepository := repository.NewQuestionDatabaseAdapter(db)
	answerRepository := repository.NewAnswerDatabaseAdapter(db)
	categoryRepository := repository.NewCategoryDatabaseAdapter(db)

	// Initialize Redis-backed cache
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	appLogger.Info("Successfully connected to Redis")
	cacheAdapter := adapter.NewRedisCacheAdapter(redisClient)

	// Initialize services
	decoder := llmtext.NewDecoder(appLogger)
	guidelineService := service.NewGuidelineService(gateway, decoder, appLogger)
	questionGenerator := service.NewQuestionGenerator(gateway, guidelineService, decoder, appLogger)
	answerGenerator := service.NewAnswerGenerator(gateway, decoder, cfg.Generation.AnswerBatchSize, appLogger)
	deduplicator := service.NewDeduplicator(embeddingService, cfg.Embedding.SimilarityThreshold, appLogger)

	triviaService := service.NewTriviaService(
		questionGenerator,
		answerGenerator,
		deduplicator,
		questionRepository,
		answerRepository,
		appLogger,
	)

	categoryTTL := cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Category, time.Hour)
	categoryService := service.NewCategoryService(categoryRepository, cacheAdapter, categoryTTL, appLogger)

	// Initialize handlers
	triviaHandler := handler.NewTriviaHandler(triviaService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	validationMw := middleware.NewValidationMiddleware()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(requestLogger())
	app.Use(cors.New(cors.Config{AllowOrigins: "*", AllowMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowHeaders: "Origin,Content-Type,Accept", MaxAge: 300}))
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes
	apiGroup := app.Group("/api")
	apiGroup.Get("/categories", categoryHandler.GetAllCategories)
	apiGroup.Post("/categories", validationMw.ValidateCreateCategoryRequest(), categoryHandler.CreateCategory)

	triviaGroup := apiGroup.Group("/trivia")
	triviaGroup.Post("/questions", validationMw.ValidateGenerateRequest(), triviaHandler.GenerateQuestions)
	triviaGroup.Post("/sets", validationMw.ValidateGenerateRequest(), triviaHandler.GenerateTriviaSet)
	triviaGroup.Post("/sets/multi", validationMw.ValidateMultiDifficultyRequest(), triviaHandler.GenerateMultiDifficultySet)

	// Start server
	go func() {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", os.Getenv("ENV")))
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
