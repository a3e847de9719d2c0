package server

import (
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"asvsearch/internal/usecase"
)

// New assembles the fiber application: global middleware plus the query,
// database-info and health routes.
func New(queryUC *usecase.QueryUseCase, corsOrigins []string) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "ASV Sequence Comparison API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: corsOrigins,
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	NewHandler(queryUC).Register(app)

	return app
}
