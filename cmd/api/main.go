// ABOUTME: Main entry point for the LeadScout API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadscout-api/api"
	"leadscout-api/api/handlers"
	"leadscout-api/core/enrichment"
	"leadscout-api/core/interfaces"
	"leadscout-api/core/places"
	"leadscout-api/core/scrape"
	"leadscout-api/infrastructure/cache/memory"
	"leadscout-api/infrastructure/cache/redis"
	"leadscout-api/infrastructure/cache/sqlite"
	stdhttp "leadscout-api/infrastructure/http/standard"
	logruslogger "leadscout-api/infrastructure/logger/logrus"
	"leadscout-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLoggerWithLevel(cfg.Server.LogLevel)
	logger.Info("Starting LeadScout API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
	})

	// Create cache
	cache := buildCache(cfg, logger)

	// Separate HTTP clients: the places provider sees our service identity,
	// scraped sites see a browser identity or they refuse the request
	scrapeCfg := scrape.DefaultConfig()
	placesHTTPClient := stdhttp.NewStandardHTTPClient(30 * time.Second)
	scraperHTTPClient := stdhttp.NewStandardHTTPClientWithUserAgent(scrapeCfg.Timeout, scrapeCfg.UserAgent)

	placesDeps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: placesHTTPClient,
		Logger:     logger,
	}
	scraperDeps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: scraperHTTPClient,
		Logger:     logger,
	}

	// Create services
	placesClient := places.NewClient(placesDeps, places.Config{
		APIKey:  cfg.Places.APIKey,
		BaseURL: cfg.Places.BaseURL,
	})
	scraper := scrape.NewWebsiteScraper(scraperDeps, scrapeCfg)
	enrichmentService := enrichment.NewService(placesDeps, placesClient, scraper)

	// Create router with middleware
	router := api.NewRouter(api.Config{
		Logger:         logger,
		RateLimitRPS:   2,
		RateLimitBurst: 10,
	})

	// Register handlers
	searchHandler := handlers.NewSearchHandler(enrichmentService, logger)
	searchHandler.RegisterRoutes(router)

	healthHandler := handlers.NewHealthHandler()
	healthHandler.RegisterRoutes(router)

	// Create HTTP server. The write timeout leaves room for a full scrape
	// batch: worst case is three attempts of fifteen seconds each.
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}

// buildCache creates the configured cache backend, falling back to memory
// when an external backend is unreachable
func buildCache(cfg *config.Config, logger interfaces.Logger) interfaces.Cache {
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache(cfg)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return redisCache
	case "sqlite":
		sqliteCache, err := sqlite.NewSQLiteCache(cfg.Cache.SQLite.Path)
		if err != nil {
			logger.Error("Failed to create SQLite cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			return memoryCache(cfg)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return sqliteCache
	default:
		logger.Info("Using memory cache", nil)
		return memoryCache(cfg)
	}
}

func memoryCache(cfg *config.Config) interfaces.Cache {
	expiration := time.Duration(cfg.Cache.Memory.DefaultExpiration) * time.Second
	return memory.NewMemoryCache(expiration, 10*time.Minute)
}
