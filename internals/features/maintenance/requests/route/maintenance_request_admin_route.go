package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/maintenance/requests/controller"
)

// MaintenanceRequestAdminRoutes dipasang di group /api/a
func MaintenanceRequestAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewMaintenanceRequestController(db)
	g := admin.Group("/maintenance-requests")

	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Patch("/:id/status", ctl.UpdateStatus)
}
