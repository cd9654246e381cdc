// file: internals/features/maintenance/requests/dto/maintenance_request_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"kostku_backend/internals/features/maintenance/requests/model"
)

/* ===================== REQUESTS ===================== */

type CreateMaintenanceRequest struct {
	MaintenanceRequestIssue  string    `json:"maintenance_request_issue" validate:"required,max=2000"`
	MaintenanceRequestRoomID uuid.UUID `json:"maintenance_request_room_id" validate:"required"`
}

func (r *CreateMaintenanceRequest) Normalize() {
	r.MaintenanceRequestIssue = strings.TrimSpace(r.MaintenanceRequestIssue)
}

// ToModel: status selalu open untuk laporan baru.
func (r CreateMaintenanceRequest) ToModel() model.MaintenanceRequestModel {
	return model.MaintenanceRequestModel{
		MaintenanceRequestIssue:  r.MaintenanceRequestIssue,
		MaintenanceRequestRoomID: r.MaintenanceRequestRoomID,
		MaintenanceRequestStatus: model.MaintenanceOpen,
	}
}

type UpdateMaintenanceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=open in_progress resolved"`
}

func (r *UpdateMaintenanceStatusRequest) Normalize() {
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
}

/* ===================== RESPONSE ===================== */

type MaintenanceRequestResponse struct {
	MaintenanceRequestID         uuid.UUID               `json:"maintenance_request_id"`
	MaintenanceRequestIssue      string                  `json:"maintenance_request_issue"`
	MaintenanceRequestRoomID     uuid.UUID               `json:"maintenance_request_room_id"`
	MaintenanceRequestRoomNumber *string                 `json:"maintenance_request_room_number,omitempty"`
	MaintenanceRequestTenantName *string                 `json:"maintenance_request_tenant_name,omitempty"`
	MaintenanceRequestStatus     model.MaintenanceStatus `json:"maintenance_request_status"`
	MaintenanceRequestCreatedAt  time.Time               `json:"maintenance_request_created_at"`
	MaintenanceRequestUpdatedAt  time.Time               `json:"maintenance_request_updated_at"`
}
