// file: internals/features/hostel/meter_readings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/meter_readings/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewMeterReadingController(db)

	readings := r.Group("/meter-readings")
	readings.Post("/", ctl.CreateReading)
	readings.Get("/", ctl.ListReadings)
}
