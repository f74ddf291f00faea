package main

import (
	"log"

	"github.com/joho/godotenv"

	"invoices/cmd"
	"invoices/internal/config"
	"invoices/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Initialize logger from configuration
	cfg := config.Load()
	if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Execute CLI commands
	cmd.Execute()
}
