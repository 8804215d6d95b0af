package main

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"easytax-service/internal/advisory"
	"easytax-service/internal/config"
	"easytax-service/internal/database"
	"easytax-service/internal/events"
	"easytax-service/internal/handlers"
	"easytax-service/internal/repository"
	"easytax-service/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Connect to database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("✓ Connected to database")

	// Run automated database migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Connect to Redis (optional; snapshots fall back to Postgres only)
	redisClient, err := config.InitRedis(cfg)
	if err != nil {
		log.Printf("WARNING: Redis unavailable: %v (caching disabled)", err)
		redisClient = nil
	} else {
		log.Println("✓ Connected to Redis")
	}

	// Application logger
	appLogger := logrus.New()
	appLogger.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		appLogger.SetLevel(level)
	}

	// Initialize NATS events publisher (non-blocking)
	go func() {
		if err := events.InitPublisher(appLogger); err != nil {
			log.Printf("WARNING: Failed to initialize events publisher: %v (events won't be published)", err)
		} else {
			log.Println("✓ NATS events publisher initialized")
		}
	}()

	// Initialize repository
	reportRepo := repository.NewReportRepository(db, redisClient)

	// Completion backend is injected so the advisory layer degrades to static
	// fallbacks when no key is configured
	var backend advisory.CompletionService
	if cfg.OpenAIAPIKey != "" {
		backend = advisory.NewOpenAIBackend(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Println("✓ Advisory completion backend configured")
	} else {
		log.Println("WARNING: OPENAI_API_KEY not set, advisory runs on static fallbacks")
	}
	advisoryClient := advisory.NewClient(backend, appLogger, time.Duration(cfg.AdvisoryTimeoutSeconds)*time.Second)

	// Initialize services
	itrService := services.NewITRService(advisoryClient, reportRepo, appLogger)
	gstService := services.NewGSTService(advisoryClient, reportRepo, appLogger)

	// Initialize handlers
	reportHandler := handlers.NewReportHandler(itrService, gstService, advisoryClient, reportRepo)

	// Setup router
	router := setupRouter(reportHandler, db)

	// Start server
	log.Printf("EasyTax Service starting on port %s (env: %s)", cfg.Port, cfg.Environment)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter configures the HTTP router
func setupRouter(reportHandler *handlers.ReportHandler, db *gorm.DB) *gin.Engine {
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Tenant-ID")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health checks
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "easytax-service",
		})
	})

	// Liveness probe - simple check that the service is running
	router.GET("/livez", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Readiness probe - check that DB is accessible
	router.GET("/readyz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil {
			c.JSON(503, gin.H{"status": "error", "message": "database not available"})
			return
		}
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"status": "error", "message": "database ping failed"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		itr := v1.Group("/itr")
		{
			itr.POST("/report", reportHandler.GenerateITRReport)
		}

		gst := v1.Group("/gst")
		{
			gst.POST("/report", reportHandler.GenerateGSTReport)
			gst.POST("/validate-gstin", reportHandler.ValidateGSTIN)
		}

		v1.GET("/tips/:category", reportHandler.GetTips)
		v1.POST("/planner/suggestions", reportHandler.PlanInvestments)

		reports := v1.Group("/reports")
		{
			reports.GET("", reportHandler.ListReports)
			reports.GET("/:id", reportHandler.GetReport)
		}

		snapshots := v1.Group("/snapshots")
		{
			snapshots.PUT("/:key", reportHandler.PutSnapshot)
			snapshots.GET("/:key", reportHandler.GetSnapshot)
		}
	}

	return router
}
