// file: internals/features/property/tenants/dto/tenant_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kostku_backend/internals/features/property/tenants/model"
	helper "kostku_backend/internals/helpers"
)

const VacantLabel = "Vacant"

/* ===================== CREATE ===================== */

type CreateTenantRequest struct {
	TenantName          string    `json:"tenant_name" validate:"required,max=150"`
	TenantPhone         *string   `json:"tenant_phone" validate:"omitempty,max=30"`
	TenantEmail         *string   `json:"tenant_email" validate:"omitempty,max=150"`
	TenantAddress       *string   `json:"tenant_address" validate:"omitempty"`
	TenantRoomID        *string   `json:"tenant_room_id" validate:"omitempty"`
	TenantDepositAmount FlexInt64 `json:"tenant_deposit_amount" validate:"gte=0"`
	TenantDepositPaid   *bool     `json:"tenant_deposit_paid" validate:"omitempty"`
}

// Normalize: trim + string kosong → NULL.
func (r *CreateTenantRequest) Normalize() {
	r.TenantName = strings.TrimSpace(r.TenantName)
	r.TenantPhone = helper.NilIfBlank(r.TenantPhone)
	r.TenantEmail = helper.NilIfBlank(r.TenantEmail)
	r.TenantAddress = helper.NilIfBlank(r.TenantAddress)
	r.TenantRoomID = helper.NilIfBlank(r.TenantRoomID)
}

func (r CreateTenantRequest) ToModel() (model.TenantModel, error) {
	roomID, err := ParseRoomID(r.TenantRoomID)
	if err != nil {
		return model.TenantModel{}, err
	}
	m := model.TenantModel{
		TenantName:          r.TenantName,
		TenantPhone:         r.TenantPhone,
		TenantEmail:         r.TenantEmail,
		TenantAddress:       r.TenantAddress,
		TenantRoomID:        roomID,
		TenantDepositAmount: int64(r.TenantDepositAmount),
	}
	if r.TenantDepositPaid != nil {
		m.TenantDepositPaid = *r.TenantDepositPaid
	}
	return m, nil
}

// ParseRoomID: nil/"" → nil (belum dapat kamar).
func ParseRoomID(s *string) (*uuid.UUID, error) {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil, nil
	}
	id, err := uuid.Parse(strings.TrimSpace(*s))
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "tenant_room_id tidak valid")
	}
	return &id, nil
}

/* ===================== PATCH ===================== */

// PatchTenantRequest: nil = tidak diubah; string kosong = dikosongkan (NULL).
type PatchTenantRequest struct {
	TenantName          *string    `json:"tenant_name" validate:"omitempty,min=1,max=150"`
	TenantPhone         *string    `json:"tenant_phone" validate:"omitempty,max=30"`
	TenantEmail         *string    `json:"tenant_email" validate:"omitempty,max=150"`
	TenantAddress       *string    `json:"tenant_address" validate:"omitempty"`
	TenantRoomID        *string    `json:"tenant_room_id" validate:"omitempty"`
	ClearRoom           bool       `json:"clear_room"`
	TenantDepositAmount *FlexInt64 `json:"tenant_deposit_amount" validate:"omitempty,gte=0"`
	TenantDepositPaid   *bool      `json:"tenant_deposit_paid" validate:"omitempty"`
}

func (r *PatchTenantRequest) Normalize() {
	if r.TenantName != nil {
		v := strings.TrimSpace(*r.TenantName)
		r.TenantName = &v
	}
	r.TenantRoomID = helper.NilIfBlank(r.TenantRoomID)
}

// ApplyTo → map kolom untuk Updates + room id baru (nil kalau tidak assign).
func (r PatchTenantRequest) ApplyTo() (map[string]any, *uuid.UUID, error) {
	up := map[string]any{}
	if r.TenantName != nil {
		up["tenant_name"] = *r.TenantName
	}
	if r.TenantPhone != nil {
		up["tenant_phone"] = helper.NilIfBlank(r.TenantPhone)
	}
	if r.TenantEmail != nil {
		up["tenant_email"] = helper.NilIfBlank(r.TenantEmail)
	}
	if r.TenantAddress != nil {
		up["tenant_address"] = helper.NilIfBlank(r.TenantAddress)
	}
	if r.TenantDepositAmount != nil {
		up["tenant_deposit_amount"] = int64(*r.TenantDepositAmount)
	}
	if r.TenantDepositPaid != nil {
		up["tenant_deposit_paid"] = *r.TenantDepositPaid
	}

	if r.ClearRoom {
		if r.TenantRoomID != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "clear_room dan tenant_room_id tidak boleh bersamaan")
		}
		up["tenant_room_id"] = nil
		return up, nil, nil
	}

	roomID, err := ParseRoomID(r.TenantRoomID)
	if err != nil {
		return nil, nil, err
	}
	if roomID != nil {
		up["tenant_room_id"] = *roomID
	}
	return up, roomID, nil
}

/* ===================== RESPONSE ===================== */

type TenantResponse struct {
	TenantID            uuid.UUID  `json:"tenant_id"`
	TenantName          string     `json:"tenant_name"`
	TenantPhone         *string    `json:"tenant_phone,omitempty"`
	TenantEmail         *string    `json:"tenant_email,omitempty"`
	TenantAddress       *string    `json:"tenant_address,omitempty"`
	TenantRoomID        *uuid.UUID `json:"tenant_room_id,omitempty"`
	TenantRoomNumber    *string    `json:"tenant_room_number,omitempty"`
	TenantRoomLabel     string     `json:"tenant_room_label"` // nomor kamar atau "Vacant"
	TenantDepositAmount int64      `json:"tenant_deposit_amount"`
	TenantDepositPaid   bool       `json:"tenant_deposit_paid"`
	TenantCreatedAt     time.Time  `json:"tenant_created_at"`
	TenantUpdatedAt     time.Time  `json:"tenant_updated_at"`
}

func FromModel(m model.TenantModel) TenantResponse {
	resp := TenantResponse{
		TenantID:            m.TenantID,
		TenantName:          m.TenantName,
		TenantPhone:         m.TenantPhone,
		TenantEmail:         m.TenantEmail,
		TenantAddress:       m.TenantAddress,
		TenantRoomID:        m.TenantRoomID,
		TenantRoomLabel:     VacantLabel,
		TenantDepositAmount: m.TenantDepositAmount,
		TenantDepositPaid:   m.TenantDepositPaid,
		TenantCreatedAt:     m.TenantCreatedAt,
		TenantUpdatedAt:     m.TenantUpdatedAt,
	}
	if rn := m.RoomNumber(); rn != "" {
		resp.TenantRoomNumber = &rn
		resp.TenantRoomLabel = rn
	}
	return resp
}

func FromModels(rows []model.TenantModel) []TenantResponse {
	out := make([]TenantResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
