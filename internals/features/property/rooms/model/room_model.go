// file: internals/features/property/rooms/model/room_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoomModel merepresentasikan tabel rooms.
// Nomor kamar sengaja tidak unique (satu gedung, dikelola manual).
type RoomModel struct {
	RoomID uuid.UUID `json:"room_id" gorm:"type:uuid;primaryKey;column:room_id"`

	RoomNumber          string  `json:"room_number" gorm:"type:varchar(20);not null;column:room_number;index:idx_rooms_number"`
	RoomFloor           int     `json:"room_floor" gorm:"not null;default:0;column:room_floor"`
	RoomExtraFacilities *string `json:"room_extra_facilities,omitempty" gorm:"type:text;column:room_extra_facilities"`

	RoomCreatedAt time.Time `json:"room_created_at" gorm:"column:room_created_at;autoCreateTime"`
	RoomUpdatedAt time.Time `json:"room_updated_at" gorm:"column:room_updated_at;autoUpdateTime"`
}

func (RoomModel) TableName() string { return "rooms" }

func (m *RoomModel) BeforeCreate(tx *gorm.DB) error {
	if m.RoomID == uuid.Nil {
		m.RoomID = uuid.New()
	}
	return nil
}
