// file: internals/features/hostel/tenants/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/tenants/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTenantController(db)

	tenants := r.Group("/tenants")
	tenants.Post("/", ctl.CreateTenant)
	tenants.Get("/", ctl.ListTenants)
	tenants.Get("/:id", ctl.GetTenant)
	tenants.Put("/:id", ctl.UpdateTenant)
	tenants.Post("/:id/move-room", ctl.MoveRoom)
	tenants.Delete("/:id", ctl.DeleteTenant)
}

func TenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewTenantController(db)

	r.Get("/me", ctl.GetMyProfile)
}
