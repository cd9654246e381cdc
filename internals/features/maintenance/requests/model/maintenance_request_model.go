// file: internals/features/maintenance/requests/model/maintenance_request_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MaintenanceStatus string

const (
	MaintenanceOpen       MaintenanceStatus = "open"
	MaintenanceInProgress MaintenanceStatus = "in_progress"
	MaintenanceResolved   MaintenanceStatus = "resolved"
)

func (s MaintenanceStatus) Valid() bool {
	switch s {
	case MaintenanceOpen, MaintenanceInProgress, MaintenanceResolved:
		return true
	}
	return false
}

// Transisi status bebas (resolved -> open juga boleh).
type MaintenanceRequestModel struct {
	MaintenanceRequestID uuid.UUID `json:"maintenance_request_id" gorm:"type:uuid;primaryKey;column:maintenance_request_id"`

	MaintenanceRequestIssue      string            `json:"maintenance_request_issue" gorm:"type:text;not null;column:maintenance_request_issue"`
	MaintenanceRequestRoomID     uuid.UUID         `json:"maintenance_request_room_id" gorm:"type:uuid;not null;column:maintenance_request_room_id;index:idx_maintenance_requests_room"`
	MaintenanceRequestTenantName *string           `json:"maintenance_request_tenant_name,omitempty" gorm:"type:text;column:maintenance_request_tenant_name"`
	MaintenanceRequestStatus     MaintenanceStatus `json:"maintenance_request_status" gorm:"type:varchar(20);not null;default:open;column:maintenance_request_status"`

	MaintenanceRequestCreatedAt time.Time `json:"maintenance_request_created_at" gorm:"column:maintenance_request_created_at;autoCreateTime;index:idx_maintenance_requests_created"`
	MaintenanceRequestUpdatedAt time.Time `json:"maintenance_request_updated_at" gorm:"column:maintenance_request_updated_at;autoUpdateTime"`
}

func (MaintenanceRequestModel) TableName() string { return "maintenance_requests" }

func (m *MaintenanceRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.MaintenanceRequestID == uuid.Nil {
		m.MaintenanceRequestID = uuid.New()
	}
	if m.MaintenanceRequestStatus == "" {
		m.MaintenanceRequestStatus = MaintenanceOpen
	}
	return nil
}
