package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/payments/controller"
)

// PaymentAdminRoutes dipasang di group /api/a
func PaymentAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentController(db)
	g := admin.Group("/payments")

	g.Get("/", ctl.List)
	g.Get("/months", ctl.Months)
	g.Get("/export", ctl.Export)
	g.Post("/generate", ctl.Generate)
	g.Patch("/:id/status", ctl.UpdateStatus)
}
