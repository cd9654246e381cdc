package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/property/tenants/controller"
)

// TenantAdminRoutes dipasang di group /api/a
func TenantAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewTenantController(db)
	g := admin.Group("/tenants")

	g.Get("/", ctl.List)
	g.Get("/:id", ctl.Detail)
	g.Post("/", ctl.Create)
	g.Patch("/:id", ctl.Patch)
	g.Delete("/:id", ctl.Delete)
}
