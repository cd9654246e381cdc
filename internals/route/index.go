// file: internals/route/index.go
package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	helperOSS "kostku_backend/internals/helpers/oss"
	routeDetails "kostku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, db *gorm.DB, blob helperOSS.BlobService) {
	startTime = time.Now()

	BaseRoutes(app, db)

	// ===================== GROUPS =====================

	configs.Logger.Info("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")

	// Admin belum pakai auth: aplikasi dipakai satu pengelola di jaringan internal.
	configs.Logger.Info("[INFO] Setting up ADMIN group...")
	admin := app.Group("/api/a")

	// ===================== MOUNT ROUTES =====================

	configs.Logger.Info("[INFO] Mounting Public routes (navigation, portal)...")
	routeDetails.PublicRoutes(public, db, blob)

	configs.Logger.Info("[INFO] Mounting Property routes...")
	routeDetails.PropertyAdminRoutes(admin, db)

	configs.Logger.Info("[INFO] Mounting Finance routes...")
	routeDetails.FinanceAdminRoutes(admin, db)

	configs.Logger.Info("[INFO] Mounting Maintenance routes...")
	routeDetails.MaintenanceAdminRoutes(admin, db)
}
