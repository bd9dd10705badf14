package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"mobilemall/api-gateway/config"
	"mobilemall/api-gateway/handlers"
	"mobilemall/api-gateway/internal/boards"
	"mobilemall/api-gateway/internal/store"
	"mobilemall/api-gateway/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := config.NewLogger()

	db, err := config.NewSupabase(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize Supabase: %v", err)
	}

	registry, err := boards.NewRegistry(cfg.BoardTables)
	if err != nil {
		logger.Fatalf("Invalid board configuration: %v", err)
	}

	h := handlers.NewApplicationHandler(cfg, logger, db, store.New(db, logger), registry)

	app := fiber.New(fiber.Config{
		// Headroom above the 5 MiB image cap so the handler can reject
		// oversize files with a proper error instead of a 413.
		BodyLimit: 8 * 1024 * 1024,
	})
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.RequestLogger(logger))

	handlers.RegisterRoutes(app, h)

	logger.Infof("Starting content API on %s", cfg.ListenAddr)
	logger.Fatal(app.Listen(cfg.ListenAddr))
}
