// file: internals/route/details/property_routes.go
package details

import (
	roomRoute "kostku_backend/internals/features/property/rooms/route"
	tenantRoute "kostku_backend/internals/features/property/tenants/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PropertyAdminRoutes: kamar + penyewa
func PropertyAdminRoutes(r fiber.Router, db *gorm.DB) {
	roomRoute.RoomAdminRoutes(r, db)
	tenantRoute.TenantAdminRoutes(r, db)
}
