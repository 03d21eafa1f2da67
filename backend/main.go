package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"ppltracker/backend/config"
	"ppltracker/backend/middleware"
	"ppltracker/backend/routes"
	"ppltracker/backend/storage"
	"ppltracker/backend/store"
	"ppltracker/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Open the state blob store
	blob, err := openBlobStore(cfg)
	if err != nil {
		log.Fatalf("Error opening storage: %v", err)
	}
	defer blob.Close()

	// Hydrate application state (with legacy migration)
	st := store.New(blob, logger)
	if err := st.Load(); err != nil {
		log.Fatalf("Error loading state: %v", err)
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, st)

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}

func openBlobStore(cfg *config.Config) (storage.BlobStore, error) {
	if cfg.StorageDriver == "postgres" {
		return storage.OpenGorm(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	}
	return storage.OpenBolt(cfg.StatePath)
}
