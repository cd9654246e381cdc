// file: internals/features/portal/dto/portal_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	tenantModel "kostku_backend/internals/features/property/tenants/model"
)

// PortalTenantResponse: isi dropdown "pilih nama" di portal.
// Sengaja hanya nama + kamar, tanpa kontak.
type PortalTenantResponse struct {
	TenantID   uuid.UUID  `json:"tenant_id"`
	TenantName string     `json:"tenant_name"`
	RoomID     *uuid.UUID `json:"room_id,omitempty"`
	RoomNumber *string    `json:"room_number,omitempty"`
}

func FromTenants(rows []tenantModel.TenantModel) []PortalTenantResponse {
	out := make([]PortalTenantResponse, 0, len(rows))
	for _, t := range rows {
		r := PortalTenantResponse{
			TenantID:   t.TenantID,
			TenantName: t.TenantName,
			RoomID:     t.TenantRoomID,
		}
		if n := t.RoomNumber(); n != "" {
			r.RoomNumber = &n
		}
		out = append(out, r)
	}
	return out
}

// SubmitProofForm: field teks dari multipart; file dibaca terpisah.
type SubmitProofForm struct {
	TenantID string `form:"tenant_id" validate:"required,uuid"`
	Month    string `form:"month" validate:"required"`
}

func (f *SubmitProofForm) Normalize() {
	f.TenantID = strings.TrimSpace(f.TenantID)
	f.Month = strings.TrimSpace(f.Month)
}

// SubmitMaintenanceRequest: bisa JSON atau form.
type SubmitMaintenanceRequest struct {
	TenantID string `json:"tenant_id" form:"tenant_id" validate:"required,uuid"`
	Issue    string `json:"issue" form:"issue" validate:"required,max=2000"`
}

func (r *SubmitMaintenanceRequest) Normalize() {
	r.TenantID = strings.TrimSpace(r.TenantID)
	r.Issue = strings.TrimSpace(r.Issue)
}

type SubmittedResponse struct {
	ID uuid.UUID `json:"id"`
}
