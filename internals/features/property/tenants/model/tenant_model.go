// file: internals/features/property/tenants/model/tenant_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	roomModel "kostku_backend/internals/features/property/rooms/model"
)

type TenantModel struct {
	TenantID uuid.UUID `json:"tenant_id" gorm:"type:uuid;primaryKey;column:tenant_id"`

	TenantName    string  `json:"tenant_name" gorm:"type:text;not null;column:tenant_name"`
	TenantPhone   *string `json:"tenant_phone,omitempty" gorm:"type:varchar(30);column:tenant_phone"`
	TenantEmail   *string `json:"tenant_email,omitempty" gorm:"type:varchar(150);column:tenant_email"`
	TenantAddress *string `json:"tenant_address,omitempty" gorm:"type:text;column:tenant_address"`

	// NULL = belum dapat kamar (tampil "Vacant")
	TenantRoomID *uuid.UUID `json:"tenant_room_id,omitempty" gorm:"type:uuid;column:tenant_room_id;index:idx_tenants_room"`

	TenantDepositAmount int64 `json:"tenant_deposit_amount" gorm:"not null;default:0;column:tenant_deposit_amount"`
	TenantDepositPaid   bool  `json:"tenant_deposit_paid" gorm:"not null;default:false;column:tenant_deposit_paid"`

	TenantCreatedAt time.Time `json:"tenant_created_at" gorm:"column:tenant_created_at;autoCreateTime"`
	TenantUpdatedAt time.Time `json:"tenant_updated_at" gorm:"column:tenant_updated_at;autoUpdateTime"`

	// preload only
	Room *roomModel.RoomModel `json:"-" gorm:"foreignKey:TenantRoomID;references:RoomID;constraint:OnDelete:SET NULL"`
}

func (TenantModel) TableName() string { return "tenants" }

func (m *TenantModel) BeforeCreate(tx *gorm.DB) error {
	if m.TenantID == uuid.Nil {
		m.TenantID = uuid.New()
	}
	return nil
}

// RoomNumber: "" kalau tenant belum punya kamar / relasi tidak di-preload.
func (m TenantModel) RoomNumber() string {
	if m.Room == nil {
		return ""
	}
	return m.Room.RoomNumber
}
