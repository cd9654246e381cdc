// file: internals/features/portal/controller/portal_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	"kostku_backend/internals/constants"
	"kostku_backend/internals/features/portal/dto"
	"kostku_backend/internals/features/portal/service"
	helper "kostku_backend/internals/helpers"
	"kostku_backend/internals/helpers/dbtime"
	helperOSS "kostku_backend/internals/helpers/oss"
)

type PortalController struct {
	DB     *gorm.DB
	Blob   helperOSS.BlobService
	ToWebP bool
	Now    func() time.Time
}

func NewPortalController(db *gorm.DB, blob helperOSS.BlobService) *PortalController {
	return &PortalController{
		DB:     db,
		Blob:   blob,
		ToWebP: configs.ProofImageWebP,
		Now:    time.Now,
	}
}

// identity: 400 untuk tenant tidak dikenal / tanpa kamar.
func (h *PortalController) identity(c *fiber.Ctx, raw string) (service.Identity, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return service.Identity{}, fiber.NewError(fiber.StatusBadRequest, "tenant_id tidak valid")
	}
	who, err := service.LoadIdentity(helper.ReqCtx(c), h.DB, id)
	switch {
	case errors.Is(err, service.ErrUnknownTenant):
		return who, fiber.NewError(fiber.StatusBadRequest, constants.TenantNotFound(raw))
	case errors.Is(err, service.ErrTenantNoRoom):
		return who, fiber.NewError(fiber.StatusBadRequest, constants.TenantHasNoRoom(raw))
	case err != nil:
		return who, fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil data tenant")
	}
	return who, nil
}

/* ===================== TENANTS ===================== */

// GET /api/public/portal/tenants
func (h *PortalController) Tenants(c *fiber.Ctx) error {
	rows, err := service.ListPortalTenants(helper.ReqCtx(c), h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar tenant")
	}
	return helper.JsonList(c, "ok", dto.FromTenants(rows), nil)
}

/* ===================== PAYMENT PROOF ===================== */

// POST /api/public/portal/payment-proofs (multipart: tenant_id, month, file)
func (h *PortalController) SubmitPaymentProof(c *fiber.Ctx) error {
	if !helperOSS.IsMultipart(c) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Gunakan multipart/form-data")
	}
	var form dto.SubmitProofForm
	if err := c.BodyParser(&form); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Form tidak valid")
	}
	form.Normalize()
	if err := helper.Validate.Struct(form); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}
	month, err := dbtime.ParseMonth(form.Month)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{"month": {constants.ErrInvalidMonthText}})
	}

	fh, err := helperOSS.GetFormFile(c, "file", "proof", "image")
	if err != nil {
		return err
	}
	if fh == nil {
		return helper.JsonValidationError(c, map[string][]string{"file": {"wajib diisi"}})
	}
	if !constants.IsAllowedProofFile(fh.Filename, fh.Header.Get(fiber.HeaderContentType)) {
		return helper.JsonError(c, fiber.StatusUnsupportedMediaType, "Bukti bayar harus gambar atau PDF")
	}

	who, err := h.identity(c, form.TenantID)
	if err != nil {
		return err
	}

	file, err := helperOSS.ReadFormFile(fh, constants.MaxProofSize, constants.ProofExt(fh.Filename), h.ToWebP)
	if err != nil {
		return err
	}

	// upload punya deadline sendiri (45s), bukan deadline request
	proof, err := service.SubmitProof(c.Context(), h.DB, h.Blob, who, month, h.Now(), file)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return fe
		}
		configs.Logger.WithError(err).WithField("tenant_id", who.TenantID).Error("❌ simpan bukti bayar gagal")
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan bukti bayar")
	}

	configs.Logger.WithFields(logrus.Fields{
		"tenant_id": who.TenantID,
		"room":      who.RoomNumber,
		"month":     dbtime.MonthKey(month),
	}).Info("🧾 bukti bayar diterima")
	return helper.JsonCreated(c, constants.MsgPaymentProofSubmitted, dto.SubmittedResponse{ID: proof.PaymentProofID})
}

/* ===================== MAINTENANCE ===================== */

// POST /api/public/portal/maintenance-requests
func (h *PortalController) SubmitMaintenanceRequest(c *fiber.Ctx) error {
	var req dto.SubmitMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	who, err := h.identity(c, req.TenantID)
	if err != nil {
		return err
	}

	m, err := service.SubmitMaintenance(helper.ReqCtx(c), h.DB, who, req.Issue)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengirim laporan")
	}
	return helper.JsonCreated(c, constants.MsgMaintenanceRequestSubmitted, dto.SubmittedResponse{ID: m.MaintenanceRequestID})
}
