// file: internals/features/hostel/rooms/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"hostelku_backend/internals/features/hostel/rooms/controller"
)

func AdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoomController(db)

	rooms := r.Group("/rooms")
	rooms.Post("/", ctl.CreateRoom)
	rooms.Get("/", ctl.ListRooms)
	rooms.Get("/:id", ctl.GetRoom)
	rooms.Put("/:id", ctl.UpdateRoom)
	rooms.Delete("/:id", ctl.DeleteRoom)
}

func TenantRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoomController(db)

	r.Get("/my-room", ctl.GetMyRoom)
}
