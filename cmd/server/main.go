package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travel-journal-server/internal/config"
	"travel-journal-server/internal/handler"
	"travel-journal-server/internal/imagestore"
	"travel-journal-server/internal/logger"
	"travel-journal-server/internal/middleware"
	"travel-journal-server/internal/repository"
	"travel-journal-server/internal/service"

	rateli "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	ginprometheus "github.com/zsais/go-gin-prometheus"
)

func main() {
	// --- Configuration ---
	cfg, err := config.LoadConfig(".env")
	if err != nil {
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// --- Logger Setup ---
	log, err := logger.New(logger.Config{
		Level:    cfg.LogLevel,
		Encoding: "json",
	})
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	zap.ReplaceGlobals(log)
	zap.L().Info("Logger initialized successfully", zap.String("logLevel", cfg.LogLevel))
	zap.L().Info("Configuration loaded")

	// --- External Connections ---
	mongoClient, err := setupMongo(cfg)
	if err != nil {
		zap.L().Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer disconnectCancel()
		if err := mongoClient.Disconnect(disconnectCtx); err != nil {
			zap.L().Error("Error disconnecting from MongoDB", zap.Error(err))
		}
	}()
	zap.L().Info("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer indexCancel()
	if err := repository.EnsureUserIndexes(indexCtx, db); err != nil {
		zap.L().Fatal("Failed to ensure user indexes", zap.Error(err))
	}
	if err := repository.EnsureStoryIndexes(indexCtx, db); err != nil {
		zap.L().Fatal("Failed to ensure story indexes", zap.Error(err))
	}
	zap.L().Info("MongoDB indexes ensured")

	images, err := imagestore.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL, log)
	if err != nil {
		zap.L().Fatal("Failed to initialize image store", zap.Error(err))
	}

	// --- Dependency Injection ---
	userRepo := repository.NewMongoUserRepository(db, log)
	storyRepo := repository.NewMongoStoryRepository(db, log)
	authSvc := service.NewAuthService(userRepo, cfg, log)
	storySvc := service.NewStoryService(storyRepo, images, log)

	authHandler := handler.NewAuthHandler(authSvc, log)
	storyHandler := handler.NewStoryHandler(storySvc, images, log)

	// --- Rate Limiter Middleware Setup ---
	rateLimitStore := rateli.InMemoryStore(&rateli.InMemoryOptions{
		Rate:  time.Minute,
		Limit: cfg.AuthRateLimit,
	})
	rateLimitMiddleware := rateli.RateLimiter(rateLimitStore, &rateli.Options{
		ErrorHandler: func(c *gin.Context, info rateli.Info) {
			zap.L().Warn("Rate limit exceeded",
				zap.String("clientIP", c.ClientIP()),
				zap.Time("resetTime", info.ResetTime),
				zap.String("path", c.Request.URL.Path),
			)
			c.String(http.StatusTooManyRequests, "Too many requests. Try again in "+time.Until(info.ResetTime).String())
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})
	zap.L().Info("Rate limiter middleware initialized")

	// --- HTTP Server Setup (Gin) ---
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == "development" {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(middleware.ZapLoggingMiddleware(log))
	router.Use(gin.Recovery())

	// Prometheus middleware registers /metrics and must be installed before
	// the application routes so they get instrumented.
	p := ginprometheus.NewPrometheus("gin")
	p.Use(router)

	// Configure CORS Middleware
	corsConfig := cors.DefaultConfig()
	allowedOrigins := cfg.GetAllowedOrigins()
	if len(allowedOrigins) == 1 && allowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else if len(allowedOrigins) > 0 {
		corsConfig.AllowOrigins = allowedOrigins
	} else {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
		zap.L().Info("CORSAllowedOrigins not set, allowing default", zap.String("origin", "http://localhost:3000"))
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Health Check Endpoint
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Static files: uploaded images and bundled assets (placeholder image).
	router.Static("/uploads", cfg.UploadDir)
	router.Static("/assets", cfg.AssetsDir)

	// Register Application Routes
	authHandler.RegisterRoutes(router, rateLimitMiddleware)
	storyHandler.RegisterRoutes(router, handler.AuthMiddleware(authSvc))

	// --- Start HTTP Server ---
	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	zap.L().Info("Starting HTTP server", zap.String("port", cfg.ServerPort))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zap.L().Fatal("HTTP Server listen error", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zap.L().Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zap.L().Error("HTTP Server forced to shutdown", zap.Error(err))
	}

	zap.L().Info("Server exiting")
}

// setupMongo connects to MongoDB with retry logic.
func setupMongo(cfg *config.Config) (*mongo.Client, error) {
	zap.L().Debug("Setting up MongoDB connection...")

	clientOptions := options.Client().ApplyURI(cfg.MongoURI)

	var lastErr error
	maxRetries := 50
	retryDelay := 3 * time.Second

	zap.L().Info("Attempting to connect to MongoDB", zap.Int("max_retries", maxRetries), zap.Duration("retry_delay", retryDelay))

	for i := 0; i < maxRetries; i++ {
		attempt := i + 1

		connectCtx, connectCancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := mongo.Connect(connectCtx, clientOptions)
		connectCancel()

		if err != nil {
			lastErr = fmt.Errorf("unable to create mongo client (attempt %d/%d): %w", attempt, maxRetries, err)
			zap.L().Warn("Mongo client creation failed, retrying...",
				zap.Int("attempt", attempt),
				zap.Int("max_retries", maxRetries),
				zap.Error(err),
			)
			if i < maxRetries-1 {
				time.Sleep(retryDelay)
			}
			continue
		}

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 2*time.Second)
		err = client.Ping(pingCtx, nil)
		pingCancel()

		if err == nil {
			zap.L().Info("Successfully connected and pinged MongoDB", zap.Int("attempt", attempt))
			return client, nil
		}

		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 2*time.Second)
		_ = client.Disconnect(disconnectCtx)
		disconnectCancel()

		lastErr = fmt.Errorf("unable to ping mongo (attempt %d/%d): %w", attempt, maxRetries, err)
		zap.L().Warn("Mongo ping failed, retrying...",
			zap.Int("attempt", attempt),
			zap.Int("max_retries", maxRetries),
			zap.Error(err),
		)
		if i < maxRetries-1 {
			time.Sleep(retryDelay)
		}
	}

	zap.L().Error("Failed to connect to MongoDB after all retries", zap.Int("attempts", maxRetries), zap.Error(lastErr))
	return nil, fmt.Errorf("failed to connect to mongo after %d attempts: %w", maxRetries, lastErr)
}
