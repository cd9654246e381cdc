package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"kostku_backend/internals/features/property/rooms/model"
	tenantModel "kostku_backend/internals/features/property/tenants/model"
)

// OccupiedRoomIDs: semua tenant_room_id non-null (distinct).
func OccupiedRoomIDs(ctx context.Context, db *gorm.DB) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := db.WithContext(ctx).
		Model(&tenantModel.TenantModel{}).
		Where("tenant_room_id IS NOT NULL").
		Distinct().
		Pluck("tenant_room_id", &ids).Error
	return ids, err
}

// ListVacantRooms: kamar kosong = id tidak ada di daftar occupied.
// Dua query terpisah, tanpa cache; urut lantai lalu nomor kamar.
func ListVacantRooms(ctx context.Context, db *gorm.DB) ([]model.RoomModel, error) {
	occupied, err := OccupiedRoomIDs(ctx, db)
	if err != nil {
		return nil, err
	}

	q := db.WithContext(ctx).Model(&model.RoomModel{})
	// NOT IN () kosong di-render jadi NOT IN (NULL) → selalu false
	if len(occupied) > 0 {
		q = q.Where("room_id NOT IN ?", occupied)
	}

	var rooms []model.RoomModel
	if err := q.Order("room_floor ASC").Order("room_number ASC").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func RoomExists(ctx context.Context, db *gorm.DB, id uuid.UUID) (bool, error) {
	var n int64
	err := db.WithContext(ctx).Model(&model.RoomModel{}).Where("room_id = ?", id).Count(&n).Error
	return n > 0, err
}
