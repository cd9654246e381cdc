// file: internals/features/finance/payments/controller/payment_controller.go
package controller

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	"kostku_backend/internals/features/finance/payments/dto"
	"kostku_backend/internals/features/finance/payments/model"
	"kostku_backend/internals/features/finance/payments/service"
	helper "kostku_backend/internals/helpers"
	"kostku_backend/internals/helpers/dbtime"
)

type PaymentController struct {
	DB     *gorm.DB
	Amount int64 // nominal sewa saat generate (RENT_AMOUNT)
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	amount := configs.RentAmount
	if amount <= 0 {
		amount = configs.DefaultRentAmount
	}
	return &PaymentController{DB: db, Amount: amount}
}

/* ===================== LIST ===================== */

// GET /payments?month=YYYY-MM[-DD]
func (h *PaymentController) List(c *fiber.Ctx) error {
	month, err := dbtime.MonthFromQuery(c, "month")
	if err != nil {
		return err
	}
	rows, err := service.ListLedger(helper.ReqCtx(c), h.DB, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}
	return helper.JsonOK(c, "ok", dto.PaymentListResponse{
		Month:       dbtime.FormatMonth(month),
		CanGenerate: len(rows) == 0,
		Payments:    dto.FromLedgerRows(rows),
	})
}

/* ===================== GENERATE ===================== */

// POST /payments/generate {month}
func (h *PaymentController) Generate(c *fiber.Ctx) error {
	var req dto.GeneratePaymentsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	month, err := dbtime.ParseMonth(req.Month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	ctx := helper.ReqCtx(c)
	inserted, err := service.GeneratePayments(ctx, h.DB, month, h.Amount)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal generate pembayaran")
	}
	configs.Logger.WithFields(logrus.Fields{
		"month":    dbtime.FormatMonth(month),
		"inserted": inserted,
	}).Info("💸 generate payments")

	rows, err := service.ListLedger(ctx, h.DB, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}

	msg := "Pembayaran dibuat"
	if inserted == 0 {
		msg = "Tidak ada pembayaran baru"
	}
	return helper.JsonCreated(c, msg, dto.GeneratePaymentsResponse{
		Month:    dbtime.FormatMonth(month),
		Amount:   h.Amount,
		Inserted: inserted,
		Payments: dto.FromLedgerRows(rows),
	})
}

/* ===================== STATUS ===================== */

// PATCH /payments/:id/status {status}
func (h *PaymentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := helper.ReqCtx(c)
	n, err := service.UpdateStatus(ctx, h.DB, id, model.PaymentStatus(req.Status), time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}

	row, err := service.FindLedgerRow(ctx, h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}
	return helper.JsonUpdated(c, "Status diperbarui", dto.FromLedgerRow(*row))
}

/* ===================== MONTHS ===================== */

// GET /payments/months?year=2025 → 12 opsi dropdown
func (h *PaymentController) Months(c *fiber.Ctx) error {
	year := dbtime.Now().Year()
	if raw := strings.TrimSpace(c.Query("year")); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil || y < 1970 || y > 9999 {
			return helper.JsonError(c, fiber.StatusBadRequest, "year tidak valid")
		}
		year = y
	}
	return helper.JsonOK(c, "ok", fiber.Map{
		"year":   year,
		"months": dbtime.MonthOptions(year),
	})
}

/* ===================== EXPORT ===================== */

// GET /payments/export?month= → .xlsx
func (h *PaymentController) Export(c *fiber.Ctx) error {
	month, err := dbtime.MonthFromQuery(c, "month")
	if err != nil {
		return err
	}
	rows, err := service.ListLedger(helper.ReqCtx(c), h.DB, month)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data pembayaran")
	}
	data, err := service.BuildLedgerXLSX(month, rows)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat file export")
	}

	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+service.ExportFilename(month)+`"`)
	return c.Send(data)
}
