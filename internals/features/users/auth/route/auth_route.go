// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/users/auth/controller"
	"hostelku_backend/internals/middlewares"
)

// PublicRoutes: endpoint tanpa JWT (login).
func PublicRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)
	r.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
}

// AdminRoutes: manajemen akun oleh admin.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)
	r.Post("/users", ctl.CreateUser)
}

// AuthedRoutes: endpoint yg butuh JWT (semua role).
func AuthedRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewAuthController(db)
	r.Get("/me", ctl.Me)
}
