// file: internals/features/property/rooms/controller/room_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/features/property/rooms/dto"
	"kostku_backend/internals/features/property/rooms/model"
	"kostku_backend/internals/features/property/rooms/service"
	helper "kostku_backend/internals/helpers"
)

type RoomController struct {
	DB *gorm.DB
}

func NewRoomController(db *gorm.DB) *RoomController {
	return &RoomController{DB: db}
}

/* ============================ LIST ============================ */

// GET /rooms → semua kamar (dropdown penugasan tenant)
func (h *RoomController) List(c *fiber.Ctx) error {
	var rows []model.RoomModel
	if err := h.DB.WithContext(helper.ReqCtx(c)).
		Order("room_number ASC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kamar")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

// GET /rooms/vacant
func (h *RoomController) Vacant(c *fiber.Ctx) error {
	rows, err := service.ListVacantRooms(helper.ReqCtx(c), h.DB)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil kamar kosong")
	}
	return helper.JsonList(c, "ok", dto.FromModels(rows), nil)
}

/* ============================ DETAIL ============================ */

func (h *RoomController) Detail(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var m model.RoomModel
	if err := h.DB.WithContext(helper.ReqCtx(c)).First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kamar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kamar")
	}
	return helper.JsonOK(c, "ok", dto.FromModel(m))
}

/* ============================ CREATE ============================ */

func (h *RoomController) Create(c *fiber.Ctx) error {
	var req dto.CreateRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	m := req.ToModel()
	if err := h.DB.WithContext(helper.ReqCtx(c)).Create(&m).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat kamar")
	}
	return helper.JsonCreated(c, "Kamar dibuat", dto.FromModel(m))
}

/* ============================ PATCH ============================ */

func (h *RoomController) Patch(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.PatchRoomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := helper.ReqCtx(c)
	var m model.RoomModel
	if err := h.DB.WithContext(ctx).First(&m, "room_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kamar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kamar")
	}

	if up := req.ApplyTo(); len(up) > 0 {
		if err := h.DB.WithContext(ctx).Model(&m).Updates(up).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui kamar")
		}
		if err := h.DB.WithContext(ctx).First(&m, "room_id = ?", id).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil data kamar")
		}
	}
	return helper.JsonUpdated(c, "Kamar diperbarui", dto.FromModel(m))
}
