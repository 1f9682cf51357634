package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/tezbase/thesis-api/internal/config"
	"github.com/tezbase/thesis-api/internal/database"
	"github.com/tezbase/thesis-api/internal/router"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.RunMigrations(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default languages
	if err := database.SeedLanguages(db); err != nil {
		log.Printf("Warning: Failed to seed languages: %v", err)
	}

	r := router.Setup(db, cfg)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
