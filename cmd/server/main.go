package main

import (
	"fmt"
	"log"
	"os"

	"github.com/huntertran/walmart-price-compare/config"
	httpDelivery "github.com/huntertran/walmart-price-compare/internal/delivery/http"
	"github.com/huntertran/walmart-price-compare/internal/infrastructure/cache"
	"github.com/huntertran/walmart-price-compare/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting walmart-price-compare backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()

	// Enable debug mode in development environment
	debug := cfg.Engine.EnableDebugLogging || cfg.Server.Environment == "development"
	if debug {
		log.Printf("Engine debug logging enabled")
	}

	// Initialize usecase layer
	comparisonService := usecase.NewComparisonService(
		memoryCache,
		usecase.ComparisonServiceConfig{
			CacheTTL:           cfg.Cache.TTL,
			EnableDebugLogging: debug,
		},
	)

	log.Printf("Rate limit: %.0f req/s per IP (burst %d)",
		cfg.RateLimit.PerIP, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(comparisonService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
