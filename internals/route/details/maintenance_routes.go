package details

import (
	maintenanceRoute "kostku_backend/internals/features/maintenance/requests/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func MaintenanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	maintenanceRoute.MaintenanceRequestAdminRoutes(r, db)
}
