package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	tenantModel "kostku_backend/internals/features/property/tenants/model"
	"kostku_backend/internals/helpers/dbtime"
)

var (
	ErrUnknownTenant = errors.New("tenant tidak dikenal")
	ErrTenantNoRoom  = errors.New("tenant belum punya kamar")
)

// Identity: nama + kamar yang diturunkan server dari tenant_id.
type Identity struct {
	TenantID   uuid.UUID
	TenantName string
	RoomID     uuid.UUID
	RoomNumber string
}

// ResolveIdentity murni: tidak ada I/O, hanya mencari di daftar tenant.
// Room harus sudah di-preload supaya RoomNumber terisi.
func ResolveIdentity(tenants []tenantModel.TenantModel, id uuid.UUID) (Identity, error) {
	for _, t := range tenants {
		if t.TenantID != id {
			continue
		}
		if t.TenantRoomID == nil {
			return Identity{}, ErrTenantNoRoom
		}
		return Identity{
			TenantID:   t.TenantID,
			TenantName: t.TenantName,
			RoomID:     *t.TenantRoomID,
			RoomNumber: t.RoomNumber(),
		}, nil
	}
	return Identity{}, ErrUnknownTenant
}

// ListPortalTenants: urut nama (dropdown portal).
func ListPortalTenants(ctx context.Context, db *gorm.DB) ([]tenantModel.TenantModel, error) {
	var rows []tenantModel.TenantModel
	err := db.WithContext(ctx).
		Preload("Room").
		Order("tenant_name ASC").
		Find(&rows).Error
	return rows, err
}

// LoadIdentity: ambil tenant by id lalu ResolveIdentity.
func LoadIdentity(ctx context.Context, db *gorm.DB, id uuid.UUID) (Identity, error) {
	var rows []tenantModel.TenantModel
	if err := db.WithContext(ctx).
		Preload("Room").
		Where("tenant_id = ?", id).
		Limit(1).
		Find(&rows).Error; err != nil {
		return Identity{}, err
	}
	return ResolveIdentity(rows, id)
}

// ProofObjectPath: {room_id}/{YYYY-MM}_{unix_millis}.{ext}
func ProofObjectPath(roomID uuid.UUID, month, now time.Time, ext string) string {
	return fmt.Sprintf("%s/%s_%d.%s", roomID, dbtime.MonthKey(month), now.UnixMilli(), ext)
}
