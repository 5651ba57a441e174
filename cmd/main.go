package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"

	"bizsetu/internal/caching"
	"bizsetu/internal/handlers"
	"bizsetu/internal/jobs/background"
	"bizsetu/internal/middleware"
	"bizsetu/internal/repositories"
	"bizsetu/internal/services"
	"bizsetu/pkg/database"
)

const version = "1.0.0"

func main() {
	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	pool, err := database.NewPool(context.Background(), databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Token verification: JWKS endpoint when configured, shared secret otherwise
	var keyfn jwt.Keyfunc
	if jwksURL := os.Getenv("JWT_JWKS_URL"); jwksURL != "" {
		keyfn, err = middleware.NewJWKSKeyfunc(jwksURL)
		if err != nil {
			log.Fatalf("Failed to initialize JWKS verifier: %v", err)
		}
	} else {
		jwtSecret := os.Getenv("JWT_SECRET")
		if jwtSecret == "" {
			jwtSecret = random.String(32) // Generate random secret for development
			log.Printf("WARNING: Using generated JWT secret: %s", jwtSecret)
		}
		keyfn = middleware.NewHMACKeyfunc(jwtSecret)
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin"
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin"
	}
	useSSL := os.Getenv("MINIO_USE_SSL") == "true"

	mediaBucket := os.Getenv("MEDIA_BUCKET")
	if mediaBucket == "" {
		mediaBucket = "business-media"
	}

	objectStore, err := services.NewMinioStore(minioEndpoint, minioAccessKey, minioSecretKey, useSSL)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}
	if err := objectStore.EnsureBucketExists(context.Background(), mediaBucket); err != nil {
		log.Printf("WARNING: could not ensure media bucket exists: %v", err)
	}

	// Repositories
	businessRepo := repositories.NewBusinessRepository(pool)
	locationRepo := repositories.NewLocationRepository(pool)
	brandRepo := repositories.NewBrandRepository(pool)
	auditRepo := repositories.NewAuditLogsRepository(pool)

	// Cache service
	cacheSvc := caching.NewRedisCacheService(redisAddr, redisPassword, redisDB)

	// Services
	mediaSvc := services.NewMediaService(objectStore, mediaBucket)
	brandSvc := services.NewBrandService(brandRepo, cacheSvc)
	locationSvc := services.NewLocationService(locationRepo, cacheSvc)
	businessSvc := services.NewBusinessService(businessRepo, locationRepo, auditRepo, locationSvc, brandSvc, mediaSvc, cacheSvc)

	// Handlers
	businessHandlers := handlers.NewBusinessHandlers(businessSvc, locationSvc, mediaSvc)
	brandHandlers := handlers.NewBrandHandlers(brandSvc)

	// Background jobs
	scheduler, err := background.NewJobScheduler(brandSvc, businessRepo)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	versionMiddleware := middleware.NewVersionMiddleware()
	e.Use(versionMiddleware.APIVersionResolver())

	// Health endpoints (no auth required)
	e.GET("/health", handlers.HealthCheck)
	e.GET("/health/ready", handlers.ReadinessCheck)
	e.GET("/health/detailed", func(c echo.Context) error {
		return handlers.HealthCheckDetailed(c, pool)
	})

	// API routes
	v1 := e.Group("/v1")
	v1.Use(versionMiddleware.VersionHeader("v1"))

	protected := v1.Group("")
	protected.Use(echojwt.WithConfig(middleware.JWTConfig(keyfn)))

	// Business onboarding routes
	protected.GET("/business", businessHandlers.GetBusiness)
	protected.POST("/business", businessHandlers.UpdateBusiness)
	protected.POST("/business/kyc", businessHandlers.UploadKYCVideo)
	protected.GET("/business/locations", businessHandlers.ListLocations)

	// Brand catalog routes
	protected.GET("/brands", brandHandlers.ListBrands)
	protected.GET("/vehicle-brands", brandHandlers.ListVehicleBrands)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	log.Printf("bizsetu server v%s starting on port %d", version, port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", port)))
}
