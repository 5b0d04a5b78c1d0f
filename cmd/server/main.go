package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/bigappetite/backend/config"
	httpDelivery "github.com/bigappetite/backend/internal/delivery/http"
	"github.com/bigappetite/backend/internal/infrastructure/store"
	"github.com/bigappetite/backend/internal/usecase"
)

func main() {
	// Load .env if present; configuration also comes from real env vars
	if err := godotenv.Load(); err == nil {
		log.Printf("Loaded environment from .env")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Big Appetite Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Session TTL: %s", cfg.Session.TTL)

	// Initialize infrastructure dependencies
	sessions := store.NewMemoryStore(cfg.Session.TTL)

	// Initialize usecase layer
	gpService := usecase.NewGPService(usecase.GPConfig{
		MealMarker:         cfg.Calc.MealMarker,
		Currency:           cfg.Calc.Currency,
		MinTokenLength:     cfg.Calc.MinTokenLength,
		EnableDebugLogging: cfg.Calc.DebugMatching,
	})
	queryService := usecase.NewQueryService()

	log.Printf("Calc: meal marker=%q, currency=%q, min token length=%d, debug=%v",
		cfg.Calc.MealMarker,
		cfg.Calc.Currency,
		cfg.Calc.MinTokenLength,
		cfg.Calc.DebugMatching)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(gpService, queryService, sessions, int(cfg.Session.TTL.Seconds()))

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
