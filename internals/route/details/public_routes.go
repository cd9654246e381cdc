package details

import (
	portalRoute "kostku_backend/internals/features/portal/route"
	navigationRoute "kostku_backend/internals/features/utils/navigation/route"
	helperOSS "kostku_backend/internals/helpers/oss"
	"kostku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// PublicRoutes: tanpa login, semua kena limiter per IP (portal lebih ketat).
func PublicRoutes(r fiber.Router, db *gorm.DB, blob helperOSS.BlobService) {
	navigationRoute.NavigationPublicRoutes(r, middlewares.GlobalRateLimiter())
	portalRoute.PortalPublicRoutes(r, db, blob, middlewares.PortalRateLimiter())
}
