package main

import (
	"fmt"
	"log"

	"github.com/zenwear/zen-backend/config"
	"github.com/zenwear/zen-backend/internal/db"
	"github.com/zenwear/zen-backend/pkg/logger"
)

// Standalone migrate-and-seed command. The server does the same on
// startup; this exists for provisioning a database ahead of deploy.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger.Initialize(logger.Config{
		Level:  "info",
		Format: "console",
	})

	database, err := db.Connect(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer func() {
		if err := db.Close(database); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(database); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := db.Seed(database); err != nil {
		log.Fatal("Failed to seed database:", err)
	}

	fmt.Println("Database migrated and seeded successfully.")
}
