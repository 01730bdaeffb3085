package main

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/akum103/ats-resume-matcher/auth"
	"github.com/akum103/ats-resume-matcher/config"
	_ "github.com/akum103/ats-resume-matcher/docs"
	"github.com/akum103/ats-resume-matcher/handlers"
	"github.com/akum103/ats-resume-matcher/llm"
	"github.com/akum103/ats-resume-matcher/logger"
	"github.com/akum103/ats-resume-matcher/storage"
)

// @title ATS Resume Matcher API
// @version 1.0
// @description Resume/job-description matching backend: extracts text from uploaded resumes, asks an LLM for an ATS-style analysis and returns the scored result.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load .env file if present (for local development)
	_ = godotenv.Load()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		logger.Fatal().Err(err).Msg("configuration error")
	}

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	store, cleanup, err := newResumeStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to initialize resume store")
	}
	defer cleanup()
	logger.Info().Str("backend", cfg.StoreBackend).Msg("resume store initialized")

	var archive *storage.ArchiveStore
	if cfg.ArchiveBucket != "" {
		archive, err = storage.NewArchiveStore(ctx, cfg)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to initialize archive store")
		}
		defer archive.Close()
		logger.Info().Str("bucket", cfg.ArchiveBucket).Msg("upload archival enabled")
	}

	completionClient := llm.NewClient(cfg)
	jwtService := auth.NewJWTService(cfg)

	analyzeHandler := handlers.NewAnalyzeHandler(cfg, store, completionClient, archive)
	authHandler := handlers.NewAuthHandler(jwtService, cfg.Users)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(handlers.RequestID())
	router.Use(handlers.RequestLogger())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", handlers.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", handlers.HealthCheck)

	api := router.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.GET("/users", authHandler.Users)
		}

		authProtected := api.Group("")
		authProtected.Use(auth.AuthMiddleware(jwtService))
		{
			authProtected.POST("/auth/refresh", authHandler.Refresh)
			authProtected.POST("/analyze", analyzeHandler.Analyze)
			authProtected.GET("/resume", analyzeHandler.GetResume)
		}
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 180 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info().Str("port", cfg.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server error")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server exited gracefully")
}

// newResumeStore builds the configured store backend. The returned cleanup
// closes any remote client; for the file backend it is a no-op.
func newResumeStore(ctx context.Context, cfg *config.Config) (storage.ResumeStore, func(), error) {
	switch cfg.StoreBackend {
	case config.StoreBackendFirestore:
		store, err := storage.NewFirestoreResumeStore(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, closerFunc(store), nil
	case config.StoreBackendRedis:
		store, err := storage.NewRedisResumeStore(ctx, cfg)
		if err != nil {
			return nil, nil, err
		}
		return store, closerFunc(store), nil
	default:
		store, err := storage.NewFileResumeStore(cfg.ResumeDir)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

func closerFunc(c io.Closer) func() {
	return func() {
		if err := c.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close resume store")
		}
	}
}
