// file: internals/features/property/tenants/controller/tenant_controller.go
package controller

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	"kostku_backend/internals/constants"
	roomService "kostku_backend/internals/features/property/rooms/service"
	"kostku_backend/internals/features/property/tenants/dto"
	"kostku_backend/internals/features/property/tenants/model"
	"kostku_backend/internals/features/property/tenants/service"
	helper "kostku_backend/internals/helpers"
)

type TenantController struct {
	DB *gorm.DB
}

func NewTenantController(db *gorm.DB) *TenantController {
	return &TenantController{DB: db}
}

func (h *TenantController) findTenant(ctx context.Context, id uuid.UUID) (model.TenantModel, error) {
	var m model.TenantModel
	err := h.DB.WithContext(ctx).Preload("Room").First(&m, "tenant_id = ?", id).Error
	return m, err
}

func (h *TenantController) ensureRoom(ctx context.Context, roomID *uuid.UUID) error {
	if roomID == nil {
		return nil
	}
	ok, err := roomService.RoomExists(ctx, h.DB, *roomID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek kamar")
	}
	if !ok {
		return fiber.NewError(fiber.StatusBadRequest, constants.RoomNotFound(roomID.String()))
	}
	return nil
}

/* ===================== LIST ===================== */

// GET /tenants
func (h *TenantController) List(c *fiber.Ctx) error {
	rows, err := service.ListTenants(helper.ReqCtx(c), h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tenant")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

/* ===================== DETAIL ===================== */

func (h *TenantController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	m, err := h.findTenant(helper.ReqCtx(c), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, constants.TenantNotFound(id.String()))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tenant")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

/* ===================== CREATE ===================== */

func (h *TenantController) Create(c *fiber.Ctx) error {
	var req dto.CreateTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	m, err := req.ToModel()
	if err != nil {
		return err
	}

	ctx := helper.ReqCtx(c)
	if err := h.ensureRoom(ctx, m.TenantRoomID); err != nil {
		return err
	}

	if err := h.DB.WithContext(ctx).Omit("Room").Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menambah tenant")
	}

	out, err := h.findTenant(ctx, m.TenantID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tenant")
	}
	configs.Logger.WithField("tenant_id", m.TenantID).Info("👤 tenant ditambahkan")
	return helper.JsonCreated(c, "Tenant ditambahkan", dto.FromModel(out))
}

/* ===================== PATCH ===================== */

// PATCH /tenants/:id → assign / pindah / kosongkan kamar, kontak, deposit
func (h *TenantController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.PatchTenantRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	up, roomID, err := req.ApplyTo()
	if err != nil {
		return err
	}

	ctx := helper.ReqCtx(c)
	if _, err := h.findTenant(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, constants.TenantNotFound(id.String()))
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tenant")
	}
	if err := h.ensureRoom(ctx, roomID); err != nil {
		return err
	}

	if len(up) > 0 {
		if err := h.DB.WithContext(ctx).
			Model(&model.TenantModel{}).
			Where("tenant_id = ?", id).
			Updates(up).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui tenant")
		}
	}

	out, err := h.findTenant(ctx, id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data tenant")
	}
	return helper.JsonUpdated(c, "Tenant diperbarui", dto.FromModel(out))
}

/* ===================== DELETE ===================== */

// DELETE /tenants/:id → hard delete. Riwayat payments / proofs / maintenance tetap.
func (h *TenantController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	res := h.DB.WithContext(helper.ReqCtx(c)).
		Where("tenant_id = ?", id).
		Delete(&model.TenantModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus tenant")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, constants.TenantNotFound(id.String()))
	}
	configs.Logger.WithField("tenant_id", id).Info("🗑️ tenant dihapus")
	return helper.JsonDeleted(c, "Tenant dihapus", fiber.Map{"tenant_id": id})
}
