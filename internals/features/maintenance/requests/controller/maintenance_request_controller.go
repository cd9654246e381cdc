// file: internals/features/maintenance/requests/controller/maintenance_request_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	"kostku_backend/internals/features/maintenance/requests/dto"
	"kostku_backend/internals/features/maintenance/requests/model"
	"kostku_backend/internals/features/maintenance/requests/service"
	roomService "kostku_backend/internals/features/property/rooms/service"
	helper "kostku_backend/internals/helpers"
)

type MaintenanceRequestController struct {
	DB *gorm.DB
}

func NewMaintenanceRequestController(db *gorm.DB) *MaintenanceRequestController {
	return &MaintenanceRequestController{DB: db}
}

/* ===================== LIST ===================== */

// GET /maintenance-requests?status=&room_id=&page=&per_page=
func (h *MaintenanceRequestController) List(c *fiber.Ctx) error {
	var f service.ListFilter

	if s := strings.TrimSpace(c.Query("status")); s != "" {
		st := model.MaintenanceStatus(strings.ToLower(s))
		if !st.Valid() {
			return helper.JsonError(c, fiber.StatusBadRequest, "status tidak valid")
		}
		f.Status = &st
	}
	if s := strings.TrimSpace(c.Query("room_id")); s != "" {
		id, err := uuid.Parse(s)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "room_id tidak valid")
		}
		f.RoomID = &id
	}

	var p *helper.Paging
	if c.Query("page") != "" || c.Query("per_page") != "" || c.Query("limit") != "" {
		pg := helper.ResolvePaging(c, 20, 100)
		p = &pg
		f.Offset, f.Limit = pg.Offset, pg.Limit
	}

	rows, total, err := service.List(helper.ReqCtx(c), h.DB, f)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan maintenance")
	}
	if p == nil {
		return helper.JsonList(c, "ok", rows, nil)
	}
	pagination := helper.BuildPagination(total, *p, rows)
	return helper.JsonList(c, "ok", rows, &pagination)
}

/* ===================== CREATE ===================== */

// POST /maintenance-requests → status selalu open
func (h *MaintenanceRequestController) Create(c *fiber.Ctx) error {
	var req dto.CreateMaintenanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := helper.ReqCtx(c)
	ok, err := roomService.RoomExists(ctx, h.DB, req.MaintenanceRequestRoomID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal cek kamar")
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, constants.RoomNotFound(req.MaintenanceRequestRoomID.String()))
	}

	m := req.ToModel()
	if err := service.Create(ctx, h.DB, &m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat laporan")
	}
	out, err := service.Find(ctx, h.DB, m.MaintenanceRequestID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	return helper.JsonCreated(c, "Laporan dibuat", out)
}

/* ===================== STATUS ===================== */

// PATCH /maintenance-requests/:id/status
func (h *MaintenanceRequestController) UpdateStatus(c *fiber.Ctx) error {
	id, err := helper.ParseUUIDParam(c, "id")
	if err != nil {
		return err
	}
	var req dto.UpdateMaintenanceStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := helper.Validate.Struct(req); err != nil {
		return helper.JsonValidationError(c, helper.ValidationErrors(err))
	}

	ctx := helper.ReqCtx(c)
	n, err := service.UpdateStatus(ctx, h.DB, id, model.MaintenanceStatus(req.Status))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui status")
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
	}
	out, err := service.Find(ctx, h.DB, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Laporan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil laporan")
	}
	return helper.JsonUpdated(c, "Status diperbarui", out)
}
