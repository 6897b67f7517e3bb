// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/configs"
	invoiceRoute "hostelku_backend/internals/features/billing/invoices/route"
	readingRoute "hostelku_backend/internals/features/hostel/meter_readings/route"
	roomRoute "hostelku_backend/internals/features/hostel/rooms/route"
	settingRoute "hostelku_backend/internals/features/hostel/settings/route"
	tenantRoute "hostelku_backend/internals/features/hostel/tenants/route"
	maintenanceRoute "hostelku_backend/internals/features/maintenance/requests/route"
	authRoute "hostelku_backend/internals/features/users/auth/route"
	authMw "hostelku_backend/internals/middlewares/auth"
)

// SetupRoutes memasang seluruh route aplikasi.
//
//	/auth    → publik (login)
//	/api/a   → admin (JWT + role admin)
//	/api/u   → penghuni (JWT + role tenant)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	BaseRoutes(app, db)

	jwt := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	// ===== PUBLIC =====
	authRoute.PublicRoutes(app.Group("/auth"), db)
	authRoute.AuthedRoutes(app.Group("/auth", jwt), db)

	// ===== ADMIN =====
	admin := app.Group("/api/a", jwt, authMw.IsAdmin())
	authRoute.AdminRoutes(admin, db)
	settingRoute.AdminRoutes(admin, db)
	roomRoute.AdminRoutes(admin, db)
	tenantRoute.AdminRoutes(admin, db)
	readingRoute.AdminRoutes(admin, db)
	invoiceRoute.AdminRoutes(admin, db)
	maintenanceRoute.AdminRoutes(admin, db)

	// ===== TENANT =====
	tenant := app.Group("/api/u", jwt, authMw.IsTenant())
	settingRoute.TenantRoutes(tenant, db)
	roomRoute.TenantRoutes(tenant, db)
	tenantRoute.TenantRoutes(tenant, db)
	invoiceRoute.TenantRoutes(tenant, db)
	maintenanceRoute.TenantRoutes(tenant, db)
}
