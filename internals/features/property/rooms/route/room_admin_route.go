package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/property/rooms/controller"
)

// RoomAdminRoutes dipasang di group /api/a
func RoomAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewRoomController(db)
	g := admin.Group("/rooms")

	g.Get("/", ctl.List)
	g.Get("/vacant", ctl.Vacant) // harus sebelum /:id
	g.Get("/:id", ctl.Detail)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
}
