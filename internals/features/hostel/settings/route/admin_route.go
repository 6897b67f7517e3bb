// file: internals/features/hostel/settings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/settings/controller"
)

// AdminRoutes: GET & PUT /settings (group sudah diberi middleware admin)
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewHostelSettingController(db)

	r.Get("/settings", ctl.GetSetting)
	r.Put("/settings", ctl.UpsertSetting)
}

// TenantRoutes: penghuni hanya boleh baca (butuh info rekening transfer)
func TenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewHostelSettingController(db)

	r.Get("/settings", ctl.GetSetting)
}
