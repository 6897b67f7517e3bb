// file: internals/features/maintenance/requests/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/maintenance/requests/controller"
	"hostelku_backend/internals/middlewares"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMaintenanceRequestController(db)

	m := r.Group("/maintenance")
	m.Get("/", ctl.ListRequests)
	m.Patch("/:id/status", ctl.UpdateStatus)
}

func TenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMaintenanceRequestController(db)

	m := r.Group("/maintenance")
	m.Post("/", middlewares.UploadRateLimiter(), ctl.CreateRequest)
	m.Get("/", ctl.ListMyRequests)
}
