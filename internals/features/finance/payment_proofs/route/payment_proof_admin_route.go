package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/payment_proofs/controller"
)

func PaymentProofAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctl := controller.NewPaymentProofController(db)
	admin.Get("/payment-proofs", ctl.List)
}
