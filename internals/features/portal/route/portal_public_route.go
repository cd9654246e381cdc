package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/portal/controller"
	helperOSS "kostku_backend/internals/helpers/oss"
)

// PortalPublicRoutes: tanpa login. Limiter dipasang oleh pemanggil (lihat route/index.go).
func PortalPublicRoutes(public fiber.Router, db *gorm.DB, blob helperOSS.BlobService, mw ...fiber.Handler) {
	ctl := controller.NewPortalController(db, blob)

	g := public.Group("/portal", mw...)

	g.Get("/tenants", ctl.Tenants)
	g.Post("/payment-proofs", ctl.SubmitPaymentProof)
	g.Post("/maintenance-requests", ctl.SubmitMaintenanceRequest)
}
