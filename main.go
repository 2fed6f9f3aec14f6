package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"main/config"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file; absence is fine outside
	// of deployments that use one.
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}
	utils.InitValidator()
}

func setupRouter(cfg config.Config) *gin.Engine {
	router := gin.Default()

	// Entry store: the in-memory source of truth for all aggregation.
	store := repository.NewEntryStore()

	// Optional append-only archive mirror.
	if cfg.MongoURI != "" {
		archive, err := repository.NewMongoArchive(context.Background(), cfg.MongoURI, cfg.MongoDB)
		if err != nil {
			log.Printf("Entry archive disabled: %v", err)
		} else {
			store.SetArchiver(archive)
			log.Println("Entry archive enabled")
		}
	}

	if cfg.SeedDemoData {
		repository.SeedDemoData(store)
		log.Println("Seeded demo data")
	}

	trackerService := usecase.NewTrackerService(store)

	// Optional Redis cache for the latest insight set.
	var insightCache usecase.InsightCache
	if cfg.RedisURL != "" {
		cache, err := services.NewInsightCache(cfg.RedisURL, cfg.InsightTTL)
		if err != nil {
			log.Printf("Insight cache disabled: %v", err)
		} else {
			insightCache = cache
			log.Println("Insight cache enabled")
		}
	}

	gemini := services.NewGeminiClient(cfg.GeminiModel, cfg.GeminiBaseURL, cfg.GeminiTimeout)
	insightService := usecase.NewInsightService(trackerService, gemini, insightCache, cfg.GeminiAPIKey)

	entriesHandler := handler.NewEntriesHandler(store)
	statsHandler := handler.NewStatsHandler(trackerService)
	insightsHandler := handler.NewInsightsHandler(insightService)
	systemHandler := handler.NewSystemHandler(store)

	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestTracingMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	api := router.Group("/api")
	api.Use(middleware.NoStoreMiddleware())
	{
		trackers := api.Group("/trackers/:tracker")
		{
			trackers.POST("/entries", entriesHandler.AddEntry)
			trackers.GET("/entries", entriesHandler.ListEntries)
			trackers.GET("/buckets", statsHandler.GetDailyBuckets)
			trackers.GET("/summary", statsHandler.GetWeeklySummary)
			trackers.GET("/distribution", statsHandler.GetDistribution)
			trackers.GET("/trends", statsHandler.GetTrends)
		}

		api.GET("/health-score", statsHandler.GetHealthScore)

		insights := api.Group("/insights")
		{
			insights.GET("", insightsHandler.GenerateInsights)
			insights.GET("/latest", insightsHandler.GetLatest)
		}

		api.GET("/system/health", systemHandler.GetHealth)
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}

func main() {
	cfg := config.Load()
	router := setupRouter(cfg)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
