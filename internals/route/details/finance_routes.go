// file: internals/route/details/finance_routes.go
package details

import (
	proofRoute "kostku_backend/internals/features/finance/payment_proofs/route"
	paymentRoute "kostku_backend/internals/features/finance/payments/route"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func FinanceAdminRoutes(r fiber.Router, db *gorm.DB) {
	paymentRoute.PaymentAdminRoutes(r, db)
	proofRoute.PaymentProofAdminRoutes(r, db)
}
