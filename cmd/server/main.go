package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/parlolabs/parlo/adapters/mongo"
	"github.com/parlolabs/parlo/adapters/objectstore"
	"github.com/parlolabs/parlo/adapters/translate"
	"github.com/parlolabs/parlo/adapters/tts"
	"github.com/parlolabs/parlo/domain/entities"
	"github.com/parlolabs/parlo/internal/api"
	"github.com/parlolabs/parlo/internal/auth"
	"github.com/parlolabs/parlo/internal/lexicon"
	"github.com/parlolabs/parlo/internal/metrics"
	"github.com/parlolabs/parlo/internal/pipeline"
	"github.com/parlolabs/parlo/internal/skill"
	"github.com/parlolabs/parlo/usecase"
)

func main() {
	// Load .env in development; ignored when absent
	godotenv.Load()

	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	// Create Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Static configuration
	catalog := entities.DefaultCatalog()
	lex := lexicon.Default()
	if path := os.Getenv("WORDLIST_PATH"); path != "" {
		var err error
		lex, err = lexicon.FromFile(path)
		if err != nil {
			logger.Fatal("Failed to load word list", zap.String("path", path), zap.Error(err))
		}
		logger.Info("Loaded word list", zap.String("path", path), zap.Int("words", lex.Len()))
	}

	// Initialize adapters
	mongoClient, err := mongo.NewClient(mongo.NewConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	history := mongo.NewHistoryRepository(mongoClient.Database)

	translator := translate.NewClient(translate.NewConfigFromEnv(), logger)

	synthesizer, err := tts.NewClient(tts.NewConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("Failed to create speech client", zap.Error(err))
	}

	audioStore, err := objectstore.NewStore(objectstore.NewConfigFromEnv(), logger)
	if err != nil {
		logger.Fatal("Failed to create audio store", zap.Error(err))
	}

	// Initialize usecase services
	recorder := metrics.NewRecorder()
	runner := pipeline.NewRunner(logger, recorder)
	validator := usecase.NewValidator(lex, catalog)
	translationService := usecase.NewTranslationService(
		validator, catalog, translator, history, synthesizer, audioStore, runner, logger)
	quizService := usecase.NewQuizService(
		translationService, history, synthesizer, audioStore, runner, logger)
	factService := usecase.NewFactService(catalog)

	// Initialize skill router and intent handlers
	router := skill.NewRouter(logger, recorder)
	skill.NewHandlers(translationService, quizService, factService, logger).Register(router)

	// Initialize API routes
	verifier, err := auth.NewVerifierFromEnv()
	if err != nil {
		logger.Fatal("Failed to configure webhook auth", zap.Error(err))
	}
	api.InitRoutes(e, router, verifier, logger)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Graceful shutdown
	go func() {
		if err := e.Start(":" + port); err != nil && err != http.ErrServerClosed {
			logger.Fatal("shutting down the server", zap.Error(err))
		}
	}()

	logger.Info("Server started", zap.String("port", port))

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}
	if err := mongoClient.Close(ctx); err != nil {
		logger.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	logger.Info("Server exited")
}
