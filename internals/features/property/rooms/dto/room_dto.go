// file: internals/features/property/rooms/dto/room_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/property/rooms/model"
	helper "kostku_backend/internals/helpers"
)

/* ===================== REQUESTS ===================== */

type CreateRoomRequest struct {
	RoomNumber          string  `json:"room_number" validate:"required,max=20"`
	RoomFloor           *int    `json:"room_floor" validate:"omitempty,min=0"`
	RoomExtraFacilities *string `json:"room_extra_facilities" validate:"omitempty"`
}

func (r *CreateRoomRequest) Normalize() {
	r.RoomNumber = strings.TrimSpace(r.RoomNumber)
	r.RoomExtraFacilities = helper.NilIfBlank(r.RoomExtraFacilities)
}

func (r CreateRoomRequest) ToModel() model.RoomModel {
	m := model.RoomModel{
		RoomNumber:          r.RoomNumber,
		RoomExtraFacilities: r.RoomExtraFacilities,
	}
	if r.RoomFloor != nil {
		m.RoomFloor = *r.RoomFloor
	}
	return m
}

// PatchRoomRequest: field nil = tidak diubah.
type PatchRoomRequest struct {
	RoomNumber          *string `json:"room_number" validate:"omitempty,min=1,max=20"`
	RoomFloor           *int    `json:"room_floor" validate:"omitempty,min=0"`
	RoomExtraFacilities *string `json:"room_extra_facilities" validate:"omitempty"`
}

func (r *PatchRoomRequest) Normalize() {
	if r.RoomNumber != nil {
		v := strings.TrimSpace(*r.RoomNumber)
		r.RoomNumber = &v
	}
}

// ApplyTo → map kolom untuk Updates (extra_facilities "" = dikosongkan).
func (r PatchRoomRequest) ApplyTo() map[string]any {
	up := map[string]any{}
	if r.RoomNumber != nil {
		up["room_number"] = *r.RoomNumber
	}
	if r.RoomFloor != nil {
		up["room_floor"] = *r.RoomFloor
	}
	if r.RoomExtraFacilities != nil {
		up["room_extra_facilities"] = helper.NilIfBlank(r.RoomExtraFacilities)
	}
	return up
}

/* ===================== RESPONSES ===================== */

type RoomResponse struct {
	RoomID              uuid.UUID `json:"room_id"`
	RoomNumber          string    `json:"room_number"`
	RoomFloor           int       `json:"room_floor"`
	RoomExtraFacilities *string   `json:"room_extra_facilities,omitempty"`
	RoomCreatedAt       time.Time `json:"room_created_at"`
	RoomUpdatedAt       time.Time `json:"room_updated_at"`
}

func FromModel(m model.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:              m.RoomID,
		RoomNumber:          m.RoomNumber,
		RoomFloor:           m.RoomFloor,
		RoomExtraFacilities: m.RoomExtraFacilities,
		RoomCreatedAt:       m.RoomCreatedAt,
		RoomUpdatedAt:       m.RoomUpdatedAt,
	}
}

func FromModels(rows []model.RoomModel) []RoomResponse {
	out := make([]RoomResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, FromModel(r))
	}
	return out
}
