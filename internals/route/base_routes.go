// file: internals/route/base_routes.go
package route

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// BaseRoutes: endpoint dasar (health check & ping DB).
func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "hostelku-backend",
			"status":  "ok",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// anti-cold start: ping ringan tanpa sentuh DB
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})

	app.Get("/healthz", func(c *fiber.Ctx) error {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "degraded",
				"db":     err.Error(),
			})
		}
		return c.JSON(fiber.Map{"status": "ok", "db": "up"})
	})
}
