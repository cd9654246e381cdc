package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/finance/payment_proofs/dto"
	"kostku_backend/internals/features/finance/payment_proofs/service"
	helper "kostku_backend/internals/helpers"
	"kostku_backend/internals/helpers/dbtime"
)

type PaymentProofController struct {
	DB *gorm.DB
}

func NewPaymentProofController(db *gorm.DB) *PaymentProofController {
	return &PaymentProofController{DB: db}
}

// GET /payment-proofs?month=YYYY-MM&page=&per_page=
func (h *PaymentProofController) List(c *fiber.Ctx) error {
	month, err := dbtime.MonthFromQuery(c, "month")
	if err != nil {
		return err
	}
	p := helper.ResolvePaging(c, 50, 200)

	rows, total, err := service.ListForMonth(helper.ReqCtx(c), h.DB, month, p.Offset, p.Limit)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil bukti pembayaran")
	}
	data := dto.FromModels(rows)
	pg := helper.BuildPagination(total, p, data)
	return helper.JsonList(c, "ok", data, &pg)
}
